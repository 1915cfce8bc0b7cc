package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	s3 "playverse/aws"
	database "playverse/database"
	models "playverse/internal/models"
	utility "playverse/internal/utility"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var drawingCollection *mongo.Collection = database.OpenCollection(database.Client, "drawing")

// UploadDrawing stores a canvas PNG in S3 and records it for the user.
func UploadDrawing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userId := chi.URLParam(r, "userId")

	if cfg.S3.Bucket == "" {
		utility.RespondError(w, http.StatusInternalServerError, "DRAWINGS_BUCKET is not defined", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}
	files := r.MultipartForm.File["drawing"]
	if len(files) == 0 {
		utility.RespondError(w, http.StatusBadRequest, "Drawing image is required", nil)
		return
	}

	file, err := files[0].Open()
	if err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Unable to read drawing image", err)
		return
	}
	defer file.Close()

	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.S3.Region)})
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	fileName := fmt.Sprintf("drawings/%s-%s.png", userId, uuid.NewString())
	imageURL, err := s3.UploadObject(cfg.S3.Bucket, fileName, sess, file)
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Failed to save drawing", err)
		return
	}

	drawing := models.Drawing{
		ID:         primitive.NewObjectID(),
		UserID:     userId,
		Title:      r.FormValue("title"),
		ImageURL:   imageURL,
		Created_at: time.Now(),
	}
	if _, err := drawingCollection.InsertOne(ctx, drawing); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Drawing saved successfully!",
		"drawing": drawing,
	})
}

// GetDrawings lists a user's saved drawings, most recent first.
func GetDrawings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userId := chi.URLParam(r, "userId")

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := drawingCollection.Find(ctx, bson.M{"userId": userId}, findOptions)
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	defer cur.Close(ctx)

	drawings := []models.Drawing{}
	for cur.Next(ctx) {
		var drawing models.Drawing
		if err := cur.Decode(&drawing); err != nil {
			utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
			return
		}
		drawings = append(drawings, drawing)
	}
	if err := cur.Err(); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusOK, drawings)
}
