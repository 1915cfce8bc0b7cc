package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "playverse/database"
	models "playverse/internal/models"
	utility "playverse/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var storyCollection *mongo.Collection = database.OpenCollection(database.Client, "story")

func SaveStory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var story models.Story
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if story.Title == "" || story.Content == "" {
		utility.RespondError(w, http.StatusBadRequest, "Title and content are required.", nil)
		return
	}

	story.ID = primitive.NewObjectID()
	story.Created_at = time.Now()
	story.ApplyDefaults()

	if _, err := storyCollection.InsertOne(ctx, story); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Story saved successfully!",
		"story":   story,
	})
}

// GetStories lists saved stories, most recent first.
func GetStories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := storyCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	defer cur.Close(ctx)

	stories := []models.Story{}
	for cur.Next(ctx) {
		var story models.Story
		if err := cur.Decode(&story); err != nil {
			utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
			return
		}
		stories = append(stories, story)
	}
	if err := cur.Err(); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusOK, stories)
}
