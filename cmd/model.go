package cmd

import (
	"context"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/datastore"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	modelBucket string
	modelDir    string
)

// modelCmd stages a model artifact from the bucket and verifies it loads.
var modelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Load a Keras model artifact from the bucket",
	Long: `Download the model artifact into a temporary file, parse it as a
Keras archive, and report its shape. The temporary file is removed
afterwards whether or not loading succeeds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModel,
}

func init() {
	modelCmd.Flags().StringVar(&modelBucket, "bucket", "", "Bucket to read from (defaults to configured bucket)")
	modelCmd.Flags().StringVar(&modelDir, "dir", "", "Key prefix of the model artifact (defaults to configured model dir)")
	RootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime()
	if err != nil {
		return err
	}

	ctx := context.Background()

	bucket := modelBucket
	if bucket == "" {
		bucket = rt.cfg.Storage.Bucket
	}
	dir := modelDir
	if dir == "" {
		dir = rt.cfg.Model.Dir
	}
	name := rt.cfg.Model.Name
	if len(args) > 0 {
		name = args[0]
	}

	svc := datastore.NewService(rt.client, rt.logger)
	m, err := svc.LoadModel(ctx, bucket, name, dir)
	if err != nil {
		return err
	}

	rt.logger.Info("Model loaded",
		zap.String("name", m.Name),
		zap.String("class", m.ClassName),
		zap.String("keras_version", m.KerasVersion),
		zap.Int("layers", len(m.Layers)),
		zap.Int64("weights_bytes", m.WeightsSize),
	)

	reg := openRegistry(rt)
	_ = reg.Record(ctx, &registry.Artifact{
		Bucket:    bucket,
		Key:       dir + "/" + name,
		Kind:      registry.KindModel,
		SizeBytes: m.WeightsSize,
	})

	return nil
}
