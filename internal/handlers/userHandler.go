package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "playverse/database"
	models "playverse/internal/models"
	utility "playverse/internal/utility"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()
var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")

func CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utility.RespondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		utility.RespondError(w, http.StatusBadRequest, "Fields not valid", validationErr)
		return
	}

	user.ID = primitive.NewObjectID()
	user.Created_at = time.Now()

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusCreated, user)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	userId := chi.URLParam(r, "userId")
	objectId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		utility.RespondError(w, http.StatusNotFound, "User not found", err)
		return
	}

	var user models.User
	err = userCollection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utility.RespondError(w, http.StatusNotFound, "User not found", nil)
		return
	}
	if err != nil {
		utility.RespondError(w, http.StatusInternalServerError, "Internal server error.", err)
		return
	}

	utility.RespondJSON(w, http.StatusOK, user)
}
