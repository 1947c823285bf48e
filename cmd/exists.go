package cmd

import (
	"context"
	"fmt"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/datastore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var existsBucket string

// existsCmd checks whether any object lives under a prefix.
var existsCmd = &cobra.Command{
	Use:   "exists <prefix>",
	Short: "Check whether any object exists under a key prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

func init() {
	existsCmd.Flags().StringVar(&existsBucket, "bucket", "", "Bucket to check (defaults to configured bucket)")
	RootCmd.AddCommand(existsCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	bucket := existsBucket
	if bucket == "" {
		bucket = rt.cfg.Storage.Bucket
	}

	svc := datastore.NewService(rt.client, rt.logger)
	exists, err := svc.ExistsUnderPrefix(context.Background(), bucket, args[0])
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("no objects under prefix %s in bucket %s", args[0], bucket)
	}

	rt.logger.Info("Prefix has objects", zap.String("bucket", bucket), zap.String("prefix", args[0]))
	return nil
}
