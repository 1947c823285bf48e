package cmd

import (
	"context"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/datastore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lsBucket string

// lsCmd lists objects under a prefix.
var lsCmd = &cobra.Command{
	Use:   "ls [prefix]",
	Short: "List objects under a key prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func init() {
	lsCmd.Flags().StringVar(&lsBucket, "bucket", "", "Bucket to list (defaults to configured bucket)")
	RootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	bucket := lsBucket
	if bucket == "" {
		bucket = rt.cfg.Storage.Bucket
	}
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	svc := datastore.NewService(rt.client, rt.logger)
	refs, err := svc.ResolveObjects(context.Background(), bucket, prefix)
	if err != nil {
		return err
	}

	if len(refs) == 0 {
		rt.logger.Info("No objects under prefix",
			zap.String("bucket", bucket),
			zap.String("prefix", prefix),
		)
		return nil
	}

	for _, ref := range refs {
		rt.logger.Info("Object",
			zap.String("key", ref.Key),
			zap.Int64("size", ref.Size),
		)
	}
	rt.logger.Info("Listing complete", zap.Int("count", len(refs)))
	return nil
}
