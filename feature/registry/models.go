package registry

import "time"

// Artifact kinds recorded by the registry.
const (
	KindDataset = "dataset"
	KindModel   = "model"
)

// Artifact represents one row of the 'artifacts' table: a dataset or model
// that passed through the storage layer.
type Artifact struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Bucket    string    `gorm:"column:bucket"`
	Key       string    `gorm:"column:object_key"`
	Kind      string    `gorm:"column:kind"`
	SizeBytes int64     `gorm:"column:size_bytes"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name.
func (Artifact) TableName() string {
	return "artifacts"
}
