// utils/firebase.go
package utils

import (
	"context"

	"wellspring/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push
// delivery is not load-bearing for bookings, so a missing or broken
// credential leaves FCMClient nil instead of killing the process; senders
// must handle the nil client.
func FirebaseInit() {
	logger := GetLogger()

	credentials := config.AppConfig.FirebaseCredentialsFile
	if credentials == "" {
		logger.Warn("firebase credentials not configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentials))
	if err != nil {
		logger.Error("firebase init failed, push notifications disabled", zap.Error(err))
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		logger.Error("firebase messaging init failed, push notifications disabled", zap.Error(err))
		return
	}

	FCMClient = client
}
