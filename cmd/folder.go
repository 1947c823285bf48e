package cmd

import (
	"context"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/datastore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var folderBucket string

// folderCmd ensures a folder marker exists in the bucket.
var folderCmd = &cobra.Command{
	Use:   "folder <name>",
	Short: "Ensure a folder marker exists in the bucket",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolder,
}

func init() {
	folderCmd.Flags().StringVar(&folderBucket, "bucket", "", "Target bucket (defaults to configured bucket)")
	RootCmd.AddCommand(folderCmd)
}

func runFolder(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	bucket := folderBucket
	if bucket == "" {
		bucket = rt.cfg.Storage.Bucket
	}

	svc := datastore.NewService(rt.client, rt.logger)
	if err := svc.EnsureFolder(context.Background(), bucket, args[0]); err != nil {
		return err
	}

	rt.logger.Info("Folder ensured", zap.String("bucket", bucket), zap.String("folder", args[0]))
	return nil
}
