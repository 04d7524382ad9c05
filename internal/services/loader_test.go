package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiyin-tech/expload/internal/logging"
	"github.com/qiyin-tech/expload/pkg/expload"
)

func newTestService(t *testing.T) (*LoadService, *mockStore) {
	t.Helper()
	st := &mockStore{}
	return NewLoadService(st, logging.NewNullLogger()), st
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadABParams_WritesPerLine(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "exp_a=0.25\nexp_b=0.5\n")

	summary, err := svc.LoadABParams(context.Background(), path, expload.ABKindFill)
	require.NoError(t, err)

	require.Len(t, st.single, 2)
	assert.Equal(t, singleWrite{key: "cfg:exp:ab", field: "exp_a:fill", value: "0.25"}, st.single[0])
	assert.Equal(t, singleWrite{key: "cfg:exp:ab", field: "exp_b:fill", value: "0.5"}, st.single[1])
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 0, summary.Skipped)
}

func TestLoadABParams_SkipsMalformedLines(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "exp_a=0.25\nnot a record\nexp_b=0.5\n")

	summary, err := svc.LoadABParams(context.Background(), path, expload.ABKindClick)
	require.NoError(t, err)

	require.Len(t, st.single, 2)
	assert.Equal(t, "exp_a:click", st.single[0].field)
	assert.Equal(t, "exp_b:click", st.single[1].field)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 1, summary.Skipped)
}

func TestLoadABParams_MissingFile(t *testing.T) {
	svc, st := newTestService(t)

	_, err := svc.LoadABParams(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), expload.ABKindShow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrFileAccess))
	assert.Empty(t, st.single)
}

func TestLoadABParams_WriteErrorAborts(t *testing.T) {
	st := &mockStore{setFieldErr: expload.ErrWriteFailed}
	svc := NewLoadService(st, logging.NewNullLogger())
	path := writeInput(t, "exp_a=0.25\n")

	_, err := svc.LoadABParams(context.Background(), path, expload.ABKindFill)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrWriteFailed))
}

func TestLoadActionChoice_SingleBulkWrite(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "1001=2\n1002=0\n1003=1\n")

	summary, err := svc.LoadActionChoice(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, st.bulk, 1)
	assert.Equal(t, "exp:default:adid:choices", st.bulk[0].key)
	assert.Equal(t, []expload.Field{
		{Name: "1001", Value: "2"},
		{Name: "1002", Value: "0"},
		{Name: "1003", Value: "1"},
	}, st.bulk[0].fields)
	assert.Equal(t, 3, summary.Records)
	assert.Empty(t, st.single)
}

func TestLoadActionChoice_MalformedLineAbortsBeforeAnyWrite(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "1001=2\nbroken line\n1003=1\n")

	_, err := svc.LoadActionChoice(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrMalformedRecord))
	assert.Empty(t, st.bulk)
	assert.Empty(t, st.single)
}

func TestLoadActionChoice_EmptyFileIssuesEmptyBatch(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "")

	summary, err := svc.LoadActionChoice(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Records)
	// The loader hands the store an empty batch; the store contract makes
	// that a no-op on the wire.
	require.Len(t, st.bulk, 1)
	assert.Empty(t, st.bulk[0].fields)
}

func TestLoadActionScores_PerLineHash(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "v1=[0.1,0.2]\nv2=[1.5]\n")

	summary, err := svc.LoadActionScores(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, st.bulk, 2)
	assert.Equal(t, "expversion:score:default:v1", st.bulk[0].key)
	assert.Equal(t, []expload.Field{
		{Name: "0", Value: "0.1"},
		{Name: "1", Value: "0.2"},
	}, st.bulk[0].fields)
	assert.Equal(t, "expversion:score:default:v2", st.bulk[1].key)
	assert.Equal(t, []expload.Field{{Name: "0", Value: "1.5"}}, st.bulk[1].fields)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 3, summary.Fields)
}

func TestLoadActionScores_BadArrayAborts(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "v1={1.0,2.0}\n")

	_, err := svc.LoadActionScores(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrValueDecode))
	assert.Empty(t, st.bulk)
}

func TestLoadActionScores_EarlierWritesStayCommitted(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "v1=[0.1]\nv2=not json\n")

	_, err := svc.LoadActionScores(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrValueDecode))
	// The first line was already written before the failure.
	require.Len(t, st.bulk, 1)
	assert.Equal(t, "expversion:score:default:v1", st.bulk[0].key)
}

func TestLoadActionValues_ElementAtATime(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "seg1=[0.1,0.2,0.3]")

	summary, err := svc.LoadActionValues(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, st.single, 3)
	assert.Equal(t, singleWrite{key: "cfg:exp:action:targetctr:default", field: "0", value: "0.1"}, st.single[0])
	assert.Equal(t, singleWrite{key: "cfg:exp:action:targetctr:default", field: "1", value: "0.2"}, st.single[1])
	assert.Equal(t, singleWrite{key: "cfg:exp:action:targetctr:default", field: "2", value: "0.3"}, st.single[2])
	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, 3, summary.Fields)
}

func TestLoadActionValues_TrailingNewlineTolerated(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "seg1=[0.5]\n")

	_, err := svc.LoadActionValues(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, st.single, 1)
	assert.Equal(t, "0.5", st.single[0].value)
}

func TestLoadActionValues_MultipleRecordsRejected(t *testing.T) {
	svc, st := newTestService(t)
	path := writeInput(t, "seg1=[0.1]\nseg2=[0.2]\n")

	_, err := svc.LoadActionValues(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrMalformedRecord))
	assert.Empty(t, st.single)
}

func TestLoadRangeSignal_NotImplemented(t *testing.T) {
	_, err := LoadRangeSignal(expload.SignalFillRate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, expload.ErrNotImplemented))
}
