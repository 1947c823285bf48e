package cmd

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketCmd is the parent command for bucket operations.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Inspect or create the pipeline bucket",
}

var bucketCheckCmd = &cobra.Command{
	Use:   "check [name]",
	Short: "Check that the bucket exists and is reachable",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBucketCheck,
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create the bucket if it does not exist",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBucketCreate,
}

func init() {
	bucketCmd.AddCommand(bucketCheckCmd)
	bucketCmd.AddCommand(bucketCreateCmd)
	RootCmd.AddCommand(bucketCmd)
}

func bucketArg(rt *runtime, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return rt.cfg.Storage.Bucket
}

func runBucketCheck(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	bucket := bucketArg(rt, args)
	exists, err := rt.client.BucketExists(context.Background(), bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}

	rt.logger.Info("Bucket exists", zap.String("bucket", bucket))
	return nil
}

func runBucketCreate(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	ctx := context.Background()
	bucket := bucketArg(rt, args)

	exists, err := rt.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		rt.logger.Info("Bucket already exists", zap.String("bucket", bucket))
		return nil
	}

	if err := rt.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: rt.cfg.Storage.Region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	rt.logger.Info("Created bucket", zap.String("bucket", bucket))
	return nil
}
