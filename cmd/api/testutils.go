package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/sushihentaime/mediumclone/internal/blogservice"
	"github.com/sushihentaime/mediumclone/internal/common"
	"github.com/sushihentaime/mediumclone/internal/mediastore"
	"github.com/sushihentaime/mediumclone/internal/userservice"
)

func newTestApplication(t *testing.T) (*application, *mediastore.MockUploader) {
	t.Helper()

	db := common.TestDB("file://../../migrations", t)

	uri := common.TestRabbitMQ(t)
	broker, err := common.NewMessageBroker(uri)
	if err != nil {
		t.Fatalf("could not connect to the message broker: %v", err)
	}
	t.Cleanup(func() { broker.Close() })

	if err := common.SetupUserExchange(broker); err != nil {
		t.Fatalf("could not setup the user exchange: %v", err)
	}

	uploader := new(mediastore.MockUploader)

	app := &application{
		config:      &Config{Environment: "test", JWTSecret: "test-secret"},
		logger:      slogDiscard(),
		userService: userservice.NewUserService(db, broker, "test-secret"),
		blogService: blogservice.NewBlogService(db),
		media:       uploader,
		broker:      broker,
	}

	return app, uploader
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
