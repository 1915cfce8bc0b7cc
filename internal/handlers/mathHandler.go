package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "playverse/database"
	"playverse/internal/config"
	"playverse/internal/genai"
	models "playverse/internal/models"
	utility "playverse/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "category")

var cfg = config.Load()
var geminiClient = genai.NewClient(cfg.Gemini.APIKey, genai.WithModel(cfg.Gemini.Model))

// GetMathItems lists all stored quiz categories.
func GetMathItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cur, err := categoryCollection.Find(ctx, bson.M{})
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	for cur.Next(ctx) {
		var category models.Category
		if err := cur.Decode(&category); err != nil {
			utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
			return
		}
		categories = append(categories, category)
	}
	if err := cur.Err(); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": categories,
	})
}

// PostMathItems creates a quiz category document.
func PostMathItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if validationErr := validate.Struct(category); validationErr != nil {
		utility.RespondError(w, http.StatusBadRequest, "Fields not valid", validationErr)
		return
	}

	category.ID = primitive.NewObjectID()
	if _, err := categoryCollection.InsertOne(ctx, category); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": category,
	})
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// GetQuizFromAI forwards the prompt to Gemini and returns the raw model
// response. Normalization happens client-side, not here.
func GetQuizFromAI(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Prompt == "" {
		utility.RespondError(w, http.StatusBadRequest, "Prompt is required", nil)
		return
	}

	resp, err := geminiClient.GenerateContent(r.Context(), req.Prompt)
	if errors.Is(err, genai.ErrNoAPIKey) {
		utility.RespondError(w, http.StatusInternalServerError, "GEMINI_API_KEY is not defined", err)
		return
	}
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Failed to generate data", err)
		return
	}

	utility.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Data generated successfully!",
		"data":    resp,
	})
}
