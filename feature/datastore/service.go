package datastore

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/logger"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/storage"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/feature/model"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectRef identifies a stored object resolved via prefix listing.
type ObjectRef struct {
	Bucket string
	Key    string
	Size   int64
}

// LoadModelFunc deserializes a model archive at a local path.
type LoadModelFunc func(path string) (*model.Model, error)

// Service is the storage facade the pipeline uses: existence checks, object
// reads, CSV frame round-trip, folder markers and model staging. It holds no
// per-call state, so concurrent use is safe as long as the underlying client
// is.
type Service struct {
	client    storage.Client
	logger    *zap.Logger
	loadModel LoadModelFunc
}

// NewService creates a datastore service using the Keras archive loader.
func NewService(client storage.Client, logg *zap.Logger) *Service {
	return NewServiceWithLoader(client, logg, model.Load)
}

// NewServiceWithLoader allows injecting the model loader (used in tests).
func NewServiceWithLoader(client storage.Client, logg *zap.Logger, load LoadModelFunc) *Service {
	return &Service{
		client:    client,
		logger:    logg,
		loadModel: load,
	}
}

// ExistsUnderPrefix reports whether at least one object in bucket has a key
// starting with prefix.
func (s *Service) ExistsUnderPrefix(ctx context.Context, bucket, prefix string) (bool, error) {
	l := logger.WithOperation(s.logger, "exists_under_prefix")
	l.Info("Checking prefix", zap.String("bucket", bucket), zap.String("prefix", prefix))

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   1,
	}

	for info := range s.client.ListObjects(ctx, bucket, opts) {
		if info.Err != nil {
			l.Error("Listing failed", zap.Error(info.Err))
			return false, &StorageError{Op: "list objects", Err: info.Err}
		}
		return true, nil
	}

	return false, nil
}

// ResolveObjects lists the objects in bucket whose key starts with prefix,
// in listing order. The slice is empty when nothing matches; callers branch
// on its length.
func (s *Service) ResolveObjects(ctx context.Context, bucket, prefix string) ([]ObjectRef, error) {
	l := logger.WithOperation(s.logger, "resolve_objects")
	l.Info("Resolving objects", zap.String("bucket", bucket), zap.String("prefix", prefix))

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	refs := []ObjectRef{}
	for info := range s.client.ListObjects(ctx, bucket, opts) {
		if info.Err != nil {
			l.Error("Listing failed", zap.Error(info.Err))
			return nil, &StorageError{Op: "list objects", Err: info.Err}
		}
		refs = append(refs, ObjectRef{Bucket: bucket, Key: info.Key, Size: info.Size})
	}

	return refs, nil
}

// ReadObject fetches the raw bytes of an object.
func (s *Service) ReadObject(ctx context.Context, bucket, key string) ([]byte, error) {
	l := logger.WithOperation(s.logger, "read_object")

	rc, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		l.Error("Get failed", zap.String("key", key), zap.Error(err))
		return nil, &StorageError{Op: "get object", Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		l.Error("Read failed", zap.String("key", key), zap.Error(err))
		return nil, &StorageError{Op: "read object", Err: err}
	}

	return data, nil
}

// ReadObjectText fetches an object decoded as text.
func (s *Service) ReadObjectText(ctx context.Context, bucket, key string) (string, error) {
	data, err := s.ReadObject(ctx, bucket, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// OpenObject returns the object content as a stream. The caller owns the
// returned reader and must close it.
func (s *Service) OpenObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	rc, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &StorageError{Op: "get object", Err: err}
	}
	return rc, nil
}

// EnsureFolder probes for a folder marker at folder and creates a zero-byte
// marker object at folder + "/" when the probe reports the key does not
// exist. Probe failures other than "no such key" surface as StorageError.
func (s *Service) EnsureFolder(ctx context.Context, bucket, folder string) error {
	l := logger.WithOperation(s.logger, "ensure_folder")
	l.Info("Ensuring folder marker", zap.String("bucket", bucket), zap.String("folder", folder))

	_, err := s.client.StatObject(ctx, bucket, folder, minio.StatObjectOptions{})
	if err == nil {
		return nil
	}
	if minio.ToErrorResponse(err).Code != "NoSuchKey" {
		l.Error("Probe failed", zap.Error(err))
		return &StorageError{Op: "probe folder marker", Err: err}
	}

	marker := folder
	if !strings.HasSuffix(marker, "/") {
		marker += "/"
	}

	_, err = s.client.PutObject(ctx, bucket, marker, bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	if err != nil {
		l.Error("Marker creation failed", zap.String("marker", marker), zap.Error(err))
		return &StorageError{Op: "create folder marker", Err: err}
	}

	l.Info("Created folder marker", zap.String("marker", marker))
	return nil
}

// UploadFile uploads the local file at localPath to bucket/key. When
// removeLocal is set the source file is deleted after a confirmed upload;
// a deletion failure is logged but does not mask the successful upload. On
// upload failure the local file is left in place.
func (s *Service) UploadFile(ctx context.Context, localPath, bucket, key string, removeLocal bool) error {
	l := logger.WithOperation(s.logger, "upload_file")
	l.Info("Uploading file",
		zap.String("local_path", localPath),
		zap.String("bucket", bucket),
		zap.String("key", key),
	)

	_, err := s.client.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{})
	if err != nil {
		l.Error("Upload failed", zap.Error(err))
		return &StorageError{Op: "upload file", Err: err}
	}

	if removeLocal {
		if err := os.Remove(localPath); err != nil {
			// The upload succeeded; a leftover source file is not a failure.
			l.Warn("Failed to remove local file after upload", zap.Error(err))
		}
	}

	return nil
}

// UploadFrame serializes the frame to CSV at localPath and uploads it to
// bucket/key, deleting the local file after a successful upload.
func (s *Service) UploadFrame(ctx context.Context, f *Frame, localPath, bucket, key string) error {
	l := logger.WithOperation(s.logger, "upload_frame")
	l.Info("Uploading frame as csv", zap.String("bucket", bucket), zap.String("key", key))

	if err := f.WriteFile(localPath); err != nil {
		l.Error("CSV serialization failed", zap.Error(err))
		return &StorageError{Op: "write csv file", Err: err}
	}

	return s.UploadFile(ctx, localPath, bucket, key, true)
}

// FrameFromObject reads the object as decoded text and parses it as CSV
// with "na" treated as the missing-value marker.
func (s *Service) FrameFromObject(ctx context.Context, bucket, key string) (*Frame, error) {
	text, err := s.ReadObjectText(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	f, err := ReadFrame(strings.NewReader(text))
	if err != nil {
		logger.WithOperation(s.logger, "frame_from_object").
			Error("CSV parse failed", zap.String("key", key), zap.Error(err))
		return nil, &ParseError{Key: key, Err: err}
	}

	return f, nil
}

// ReadCSV resolves key in bucket and parses the first matching object as a
// frame. An empty resolution fails with NotFoundError.
func (s *Service) ReadCSV(ctx context.Context, bucket, key string) (*Frame, error) {
	refs, err := s.ResolveObjects(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, &NotFoundError{Bucket: bucket, Key: key}
	}

	return s.FrameFromObject(ctx, bucket, refs[0].Key)
}

// LoadModel resolves dir/name (or name when dir is empty) in bucket, stages
// the object bytes in a uniquely named local temp file with the model
// suffix, and invokes the model loader on the path. The temp file is
// removed on every exit path, including loader failure.
func (s *Service) LoadModel(ctx context.Context, bucket, name, dir string) (*model.Model, error) {
	l := logger.WithOperation(s.logger, "load_model")

	key := name
	if dir != "" {
		key = dir + "/" + name
	}
	l.Info("Loading model", zap.String("bucket", bucket), zap.String("key", key))

	refs, err := s.ResolveObjects(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		l.Error("Model not found", zap.String("key", key))
		return nil, &NotFoundError{Bucket: bucket, Key: key}
	}

	rc, err := s.client.GetObject(ctx, bucket, refs[0].Key, minio.GetObjectOptions{})
	if err != nil {
		l.Error("Get failed", zap.Error(err))
		return nil, &StorageError{Op: "get model object", Err: err}
	}
	defer rc.Close()

	// Unique name per call so concurrent loads cannot collide.
	tmpPath := filepath.Join(os.TempDir(), "model-"+uuid.NewString()+model.FileSuffix)
	tmp, err := os.Create(tmpPath)
	if err != nil {
		l.Error("Temp file creation failed", zap.Error(err))
		return nil, &StorageError{Op: "create temp file", Err: err}
	}
	defer os.Remove(tmpPath)

	_, copyErr := io.Copy(tmp, rc)
	closeErr := tmp.Close()
	if copyErr != nil {
		l.Error("Temp file write failed", zap.Error(copyErr))
		return nil, &StorageError{Op: "write temp file", Err: copyErr}
	}
	if closeErr != nil {
		l.Error("Temp file write failed", zap.Error(closeErr))
		return nil, &StorageError{Op: "write temp file", Err: closeErr}
	}

	m, err := s.loadModel(tmpPath)
	if err != nil {
		l.Error("Model deserialization failed", zap.Error(err))
		return nil, &StorageError{Op: "load model", Err: err}
	}

	l.Info("Model loaded", zap.String("key", refs[0].Key))
	return m, nil
}
