package core

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"riskboard/internal/contract"
	"riskboard/internal/dataset"
	"riskboard/schema"
)

// snapshotKeyPrefix namespaces snapshot entries within the store.
const snapshotKeyPrefix = "records|"

// LoadRecords produces the typed record collection for the configured
// dataset, going through the snapshot store when one is available. The
// snapshot key includes the source fingerprint, so an edited file is a miss
// rather than stale data. Store failures degrade to a plain load with a
// warning; they never fail the pipeline.
func LoadRecords(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.Record, error) {
	source := dataset.NewCSVSource(cfg.DataPath)

	var store contract.SnapshotStore
	if mgr != nil {
		store = mgr.GetSnapshotStore()
	}
	if store == nil {
		return NewRecordStore(source).Load(ctx)
	}

	fingerprint, err := source.Fingerprint(ctx)
	if err != nil {
		return nil, err
	}
	key := snapshotKeyPrefix + fingerprint

	if records, ok := snapshotLookup(store, key); ok {
		return records, nil
	}

	records, err := NewRecordStore(source).Load(ctx)
	if err != nil {
		return nil, err
	}
	snapshotSave(store, key, records)
	return records, nil
}

// snapshotLookup returns the cached record collection for key, or ok=false
// on any miss, version skew or decode problem.
func snapshotLookup(store contract.SnapshotStore, key string) ([]schema.Record, bool) {
	data, version, _, err := store.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		contract.LogWarn("snapshot lookup failed", err)
		return nil, false
	}
	if data == nil || version != contract.SnapshotVersion {
		return nil, false
	}
	var records []schema.Record
	if err := json.Unmarshal(data, &records); err != nil {
		contract.LogWarn("snapshot decode failed", err)
		return nil, false
	}
	return records, true
}

// snapshotSave persists the record collection under key; failures only warn.
func snapshotSave(store contract.SnapshotStore, key string, records []schema.Record) {
	data, err := json.Marshal(records)
	if err != nil {
		contract.LogWarn("snapshot encode failed", err)
		return
	}
	if err := store.Set(key, data, contract.SnapshotVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("snapshot save failed", err)
	}
}
