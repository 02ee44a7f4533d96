package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"riskboard/schema"
)

// MockDatasetSource is a mock type for the DatasetSource type.
type MockDatasetSource struct {
	mock.Mock
}

var _ DatasetSource = &MockDatasetSource{} // Compile-time check

// Name implements the DatasetSource interface.
func (m *MockDatasetSource) Name() string {
	ret := m.Called()
	name, _ := ret.Get(0).(string)
	return name
}

// Fingerprint implements the DatasetSource interface.
func (m *MockDatasetSource) Fingerprint(ctx context.Context) (string, error) {
	ret := m.Called(ctx)
	fp, _ := ret.Get(0).(string)
	return fp, ret.Error(1)
}

// ReadAll implements the DatasetSource interface.
func (m *MockDatasetSource) ReadAll(ctx context.Context) (*schema.RawTable, error) {
	ret := m.Called(ctx)
	table, _ := ret.Get(0).(*schema.RawTable)
	return table, ret.Error(1)
}
