package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Singleton Firestore client shared by every collaborator.
var (
	client     *firestore.Client
	clientErr  error
	clientOnce sync.Once
)

// InitFirestore initializes and returns the Firestore client. Credentials
// come base64-encoded from FIREBASE_CREDENTIALS.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			clientErr = fmt.Errorf("decoding Firestore credentials: %w", err)
			return
		}

		app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsJSON(creds))
		if err != nil {
			clientErr = fmt.Errorf("initializing Firebase app: %w", err)
			return
		}

		client, clientErr = app.Firestore(context.Background())
	})

	return client, clientErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
