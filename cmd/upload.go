package cmd

import (
	"context"
	"os"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/database"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/datastore"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uploadBucket string
	uploadKeep   bool
)

// uploadCmd uploads a local file into the bucket.
var uploadCmd = &cobra.Command{
	Use:   "upload <local-file> <key>",
	Short: "Upload a local file to the bucket",
	Long: `Upload a local file to the configured bucket under the given key.
The local file is removed after a successful upload unless --keep is set.`,
	Args: cobra.ExactArgs(2),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadBucket, "bucket", "", "Target bucket (defaults to configured bucket)")
	uploadCmd.Flags().BoolVar(&uploadKeep, "keep", false, "Keep the local file after upload")
	RootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	ctx := context.Background()
	localPath, key := args[0], args[1]

	bucket := uploadBucket
	if bucket == "" {
		bucket = rt.cfg.Storage.Bucket
	}

	// Stat before upload: on success with removal the file is gone.
	var size int64
	if info, err := os.Stat(localPath); err == nil {
		size = info.Size()
	}

	svc := datastore.NewService(rt.client, rt.logger)
	if err := svc.UploadFile(ctx, localPath, bucket, key, !uploadKeep); err != nil {
		return err
	}

	reg := openRegistry(rt)
	_ = reg.Record(ctx, &registry.Artifact{
		Bucket:    bucket,
		Key:       key,
		Kind:      registry.KindDataset,
		SizeBytes: size,
	})

	rt.logger.Info("Upload complete", zap.String("bucket", bucket), zap.String("key", key))
	return nil
}

// openRegistry connects the optional registry database. A failed connection
// degrades to a disabled registry, matching the optional-database behavior
// of the rest of the tooling.
func openRegistry(rt *runtime) *registry.Service {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		rt.logger.Warn("Registry database unavailable", zap.Error(err))
		return registry.NewService(nil, rt.logger)
	}

	reg := registry.NewService(db, rt.logger)
	if err := reg.Migrate(); err != nil {
		rt.logger.Warn("Registry migration failed", zap.Error(err))
		return registry.NewService(nil, rt.logger)
	}
	return reg
}
