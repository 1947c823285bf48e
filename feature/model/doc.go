// Package model reads Keras 3 model archives.
//
// The sentiment pipeline trains its classifier in Keras and stores the saved
// .keras artifact in object storage. A .keras file is a zip archive holding
// config.json (architecture), metadata.json (Keras version) and the weights
// payload. Load parses the archive into a Model handle describing name,
// class, layers and weights size.
//
// Weight tensors themselves are not decoded here; serving the model is the
// Python side's job. The handle is enough to verify an artifact is a wellformed
// model of the expected shape before the pipeline depends on it.
//
// # Usage
//
//	m, err := model.Load("/tmp/model-abc.keras")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.ClassName, len(m.Layers))
package model
