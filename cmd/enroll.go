package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"topics/internal/config"
	"topics/internal/enrollment"
	"topics/pkg/domain"
	"topics/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// enrollCommand constructs the 'enroll' subcommand that enrolls the given
// subscriber identities into a topic and prints the outcome.
func enrollCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enroll [subscriber ids...]",
		Short: "Enrolls subscribers into a topic, creating the topic when needed",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			topicKey, _ := cmd.Flags().GetString("topic")
			org, _ := cmd.Flags().GetString("organization")
			env, _ := cmd.Flags().GetString("environment")
			async, _ := cmd.Flags().GetBool("async")

			orgID, err := uuid.Parse(org)
			if err != nil {
				logger.Fatal(ctx, "invalid organization id", zap.Error(err))
			}
			envID, err := uuid.Parse(env)
			if err != nil {
				logger.Fatal(ctx, "invalid environment id", zap.Error(err))
			}

			req := enrollment.Request{
				Scope: domain.Scope{
					OrganizationID: domain.OrganizationID(orgID),
					EnvironmentID:  domain.EnvironmentID(envID),
				},
				TopicKey: domain.TopicKey(topicKey),
			}
			for _, id := range args {
				req.Subscribers = append(req.Subscribers, domain.ExternalSubscriberID(id))
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			enroller, closeCache := getEnroller(ctx, cfg, pgsql, nil)
			defer closeCache()

			if async {
				if err := enroller.EnqueueEnroll(ctx, req); err != nil {
					logger.Fatal(ctx, "could not enqueue enrollment", zap.Error(err))
				}
				fmt.Println("queued") //nolint: forbidigo

				return
			}

			res, err := enroller.Enroll(ctx, req)
			if err != nil {
				logger.Fatal(ctx, "could not enroll subscribers", zap.Error(err))
			}

			fmt.Printf("succeeded: %s\n", joinIDs(res.Existing)) //nolint: forbidigo
			fmt.Printf("not found: %s\n", joinIDs(res.NotFound)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("topic", "", "Topic key")
	cmd.Flags().String("organization", "", "Organization ID")
	cmd.Flags().String("environment", "", "Environment ID")
	cmd.Flags().Bool("async", false, "Queue the enrollment for the background workers")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("organization")
	_ = cmd.MarkFlagRequired("environment")

	return cmd
}

func joinIDs(ids []domain.ExternalSubscriberID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}

	return strings.Join(parts, ", ")
}
