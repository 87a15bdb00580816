package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_EmptySelectionSendsNothing(t *testing.T) {
	svc := &fakeService{}
	c := NewUploadController(svc)

	call, err := c.Submit(context.Background())

	assert.Nil(t, call)
	assert.True(t, errors.Is(err, ErrEmptySelection))
	assert.Equal(t, "Please select files to upload", c.Notice())
	assert.Equal(t, UploadIdle, c.Status().Phase)
	assert.Empty(t, svc.uploadCalls)
}

func TestUpload_SelectFilesReplacesAndClears(t *testing.T) {
	c := NewUploadController(&fakeService{})

	_, _ = c.Submit(context.Background())
	require.NotEmpty(t, c.Notice())

	require.True(t, c.SelectFiles(files("a.pdf", "b.pdf")))
	assert.Empty(t, c.Notice())

	require.True(t, c.SelectFiles(files("c.md")))
	assert.Equal(t, files("c.md"), c.Files())
	assert.Equal(t, UploadIdle, c.Status().Phase)
}

func TestUpload_DuplicateNamesKept(t *testing.T) {
	c := NewUploadController(&fakeService{})
	c.SelectFiles([]File{{Name: "a.pdf", Path: "/x/a.pdf"}, {Name: "a.pdf", Path: "/y/a.pdf"}})
	assert.Len(t, c.Files(), 2)
}

func TestUpload_SubmitDoesNotCallServiceUntilRun(t *testing.T) {
	svc := &fakeService{uploadCount: 2}
	c := NewUploadController(svc)
	c.SelectFiles(files("a.pdf", "b.txt"))

	call, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, svc.uploadCalls)

	res := call()
	require.Len(t, svc.uploadCalls, 1)
	assert.Equal(t, files("a.pdf", "b.txt"), svc.uploadCalls[0])
	assert.Equal(t, 2, res.Count)
}

func TestUpload_DoubleSubmitRefused(t *testing.T) {
	svc := &fakeService{uploadCount: 1}
	c := NewUploadController(svc)
	c.SelectFiles(files("a.pdf"))

	first, err := c.Submit(context.Background())
	require.NoError(t, err)

	second, err := c.Submit(context.Background())
	assert.Nil(t, second)
	assert.True(t, errors.Is(err, ErrUploadInFlight))

	first()
	assert.Len(t, svc.uploadCalls, 1)
}

func TestUpload_SelectionLockedWhileUploading(t *testing.T) {
	c := NewUploadController(&fakeService{})
	c.SelectFiles(files("a.pdf"))
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.False(t, c.SelectFiles(files("b.pdf")))
	assert.Equal(t, files("a.pdf"), c.Files())
}

func TestUpload_FailureKeepsSelectionForRetry(t *testing.T) {
	svc := &fakeService{uploadErr: &detailError{"document limit exceeded"}}
	c := NewUploadController(svc)
	c.SelectFiles(files("a.pdf"))

	call, err := c.Submit(context.Background())
	require.NoError(t, err)
	ev := c.Resolve(call())

	assert.Nil(t, ev)
	assert.Equal(t, UploadStatus{Phase: UploadFailed, Reason: "document limit exceeded"}, c.Status())
	assert.Equal(t, "Error uploading documents: document limit exceeded", c.Notice())
	assert.Equal(t, files("a.pdf"), c.Files())

	// retry without reselecting
	svc.uploadErr = nil
	svc.uploadCount = 1
	call, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, c.Notice())
	require.NotNil(t, c.Resolve(call()))
	assert.Len(t, svc.uploadCalls, 2)
}

func TestUpload_FailureWithoutTextFallsBack(t *testing.T) {
	c := NewUploadController(&fakeService{uploadErr: errors.New("  ")})
	c.SelectFiles(files("a.pdf"))
	call, _ := c.Submit(context.Background())
	c.Resolve(call())

	assert.Equal(t, "Network Error", c.Status().Reason)
}

func TestUpload_StaleResultIgnored(t *testing.T) {
	c := NewUploadController(&fakeService{})
	assert.Nil(t, c.Resolve(UploadResult{Count: 3}))
	assert.Equal(t, UploadIdle, c.Status().Phase)
	assert.Empty(t, c.Notice())
}

func TestUpload_SubmitAfterSuccessNeedsNewSelection(t *testing.T) {
	svc := &fakeService{uploadCount: 1}
	c := NewUploadController(svc)
	c.SelectFiles(files("a.pdf"))
	call, _ := c.Submit(context.Background())
	c.Resolve(call())

	again, err := c.Submit(context.Background())
	assert.Nil(t, again)
	assert.True(t, errors.Is(err, ErrEmptySelection))
	assert.Equal(t, UploadIdle, c.Status().Phase)
}

func TestUploadPhaseString(t *testing.T) {
	assert.Equal(t, "idle", UploadIdle.String())
	assert.Equal(t, "uploading", UploadUploading.String())
	assert.Equal(t, "succeeded", UploadSucceeded.String())
	assert.Equal(t, "failed", UploadFailed.String())
	assert.Equal(t, "unknown", UploadPhase(42).String())
}
