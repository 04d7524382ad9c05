package services

import (
	"context"

	"github.com/qiyin-tech/expload/pkg/expload"
)

// singleWrite records one SetField call.
type singleWrite struct {
	key, field, value string
}

// bulkWrite records one SetFields call.
type bulkWrite struct {
	key    string
	fields []expload.Field
}

// mockStore captures every write issued by a loader.
type mockStore struct {
	single []singleWrite
	bulk   []bulkWrite

	setFieldErr  error
	setFieldsErr error
}

func (m *mockStore) SetField(_ context.Context, key, field, value string) error {
	if m.setFieldErr != nil {
		return m.setFieldErr
	}
	m.single = append(m.single, singleWrite{key: key, field: field, value: value})
	return nil
}

func (m *mockStore) SetFields(_ context.Context, key string, fields []expload.Field) error {
	if m.setFieldsErr != nil {
		return m.setFieldsErr
	}
	m.bulk = append(m.bulk, bulkWrite{key: key, fields: fields})
	return nil
}

func (m *mockStore) Close() error { return nil }

var _ expload.Store = (*mockStore)(nil)
