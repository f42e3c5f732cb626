package depcache

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// record is the wire shape of a ProjectFilesChecksum.
// The pointer tells a missing field apart from an empty one.
type record struct {
	AbsoluteCachesPathToChecksum *map[domain.CacheRootID]string `json:"absoluteCachesPathToChecksum"`
}

// Serialize encodes a checksum record as UTF-8 JSON.
func Serialize(checksum domain.ProjectFilesChecksum) ([]byte, error) {
	m := checksum.AbsoluteCachesPathToChecksum
	if m == nil {
		m = map[domain.CacheRootID]string{}
	}
	data, err := json.Marshal(record{AbsoluteCachesPathToChecksum: &m})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}
	return data, nil
}

// Deserialize decodes a record written by Serialize.
// Records of any other shape are rejected rather than misread.
func Deserialize(data []byte) (domain.ProjectFilesChecksum, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var r record
	if err := dec.Decode(&r); err != nil {
		return domain.ProjectFilesChecksum{}, zerr.Wrap(err, domain.ErrRecordUnmarshalFailed.Error())
	}
	if r.AbsoluteCachesPathToChecksum == nil {
		return domain.ProjectFilesChecksum{}, domain.ErrRecordShapeMismatch
	}
	return domain.NewProjectFilesChecksum(*r.AbsoluteCachesPathToChecksum), nil
}

// InvalidationStore reads and writes the checksum record in a cache's metadata.
type InvalidationStore struct {
	meta   ports.MetadataStore
	logger ports.Logger
}

// NewInvalidationStore creates an InvalidationStore over meta.
func NewInvalidationStore(meta ports.MetadataStore, logger ports.Logger) *InvalidationStore {
	return &InvalidationStore{meta: meta, logger: logger}
}

// Load returns the record published by the previous build.
// A missing, unreadable or foreign record is reported as absent.
func (s *InvalidationStore) Load() (domain.ProjectFilesChecksum, bool) {
	data, ok, err := s.meta.Get(domain.ProjectFilesChecksumKey)
	if err != nil {
		s.logger.Warn("Failed to read previous Gradle project files checksum: " + err.Error())
		return domain.ProjectFilesChecksum{}, false
	}
	if !ok {
		return domain.ProjectFilesChecksum{}, false
	}

	checksum, err := Deserialize(data)
	if err != nil {
		s.logger.Warn("Previous Gradle project files checksum is unreadable, treating it as absent: " + err.Error())
		return domain.ProjectFilesChecksum{}, false
	}
	return checksum, true
}

// Publish overwrites the stored record.
func (s *InvalidationStore) Publish(checksum domain.ProjectFilesChecksum) error {
	data, err := Serialize(checksum)
	if err != nil {
		return err
	}
	return s.meta.Publish(domain.ProjectFilesChecksumKey, data)
}
