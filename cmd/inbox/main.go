package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/rocketscienceinc/portfolio-site/internal/config"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/repository"
	"github.com/rocketscienceinc/portfolio-site/internal/repository/storage"
	"github.com/rocketscienceinc/portfolio-site/internal/usecase"
)

// main - prints the latest contact form submissions recorded in the sqlite inbox, or one message in full.
func main() {
	limit := flag.Int("n", 20, "number of messages to show")
	id := flag.Int64("id", 0, "print the message with this id in full")
	flag.Parse()

	if err := run(*limit, *id); err != nil {
		fmt.Fprintf(os.Stderr, "inbox: %v\n", err)
		os.Exit(1)
	}
}

func run(limit int, id int64) error {
	_ = godotenv.Load()

	conf := config.MustLoad(config.Path())
	if conf.SQLiteStoragePath == "" {
		return errors.New("sqlite-storage-path is not configured")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.SlogLevel()}))

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return err
	}
	defer sqliteStorage.Close()

	ctx := context.Background()
	if err = sqliteStorage.Init(ctx); err != nil {
		return err
	}

	contactUseCase := usecase.NewContactUseCase(logger, repository.NewContactRepository(sqliteStorage.Connection))

	if id > 0 {
		msg, findErr := contactUseCase.Message(ctx, id)
		if findErr != nil {
			return findErr
		}

		return printMessage(os.Stdout, msg)
	}

	messages, err := contactUseCase.Recent(ctx, limit)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tRECEIVED\tFROM\tSUBJECT")
	for _, msg := range messages {
		fmt.Fprintf(writer, "%d\t%s\t%s <%s>\t%s\n", msg.ID, msg.ReceivedAt.Format("2006-01-02 15:04"), msg.Name, msg.Email, msg.Subject)
	}

	return writer.Flush()
}

func printMessage(w io.Writer, msg *entity.ContactMessage) error {
	_, err := fmt.Fprintf(w, "ID:       %d\nReceived: %s\nFrom:     %s <%s>\nSubject:  %s\n\n%s\n",
		msg.ID, msg.ReceivedAt.Format("2006-01-02 15:04"), msg.Name, msg.Email, msg.Subject, msg.Message)

	return err
}
