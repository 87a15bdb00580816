// internal/session/upload.go
package session

import (
	"context"
	"fmt"

	"compass/internal/logger"
)

// EmptySelectionNotice is shown when an upload is attempted with no files.
const EmptySelectionNotice = "Please select files to upload"

// UploadPhase is the lifecycle state of the current batch
type UploadPhase int

const (
	UploadIdle UploadPhase = iota
	UploadUploading
	UploadSucceeded
	UploadFailed
)

func (p UploadPhase) String() string {
	switch p {
	case UploadIdle:
		return "idle"
	case UploadUploading:
		return "uploading"
	case UploadSucceeded:
		return "succeeded"
	case UploadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UploadStatus is the phase plus its payload. Count is set for
// UploadSucceeded, Reason for UploadFailed.
type UploadStatus struct {
	Phase  UploadPhase
	Count  int
	Reason string
}

// UploadResult is what an UploadCall produces
type UploadResult struct {
	Count int
	Err   error
}

// UploadCall performs the network part of an upload. It touches no
// controller state and is safe to run off the UI goroutine.
type UploadCall func() UploadResult

// DocumentsIngested is emitted once per successful upload.
type DocumentsIngested struct {
	Count int
}

// UploadController owns the staged files and the upload status.
type UploadController struct {
	uploader Uploader
	files    []File
	status   UploadStatus
	notice   string
}

func NewUploadController(u Uploader) *UploadController {
	return &UploadController{uploader: u}
}

// SelectFiles replaces the selection and clears any previous outcome.
// It is refused while an upload is running.
func (c *UploadController) SelectFiles(files []File) bool {
	if c.status.Phase == UploadUploading {
		return false
	}
	c.files = append([]File(nil), files...)
	c.status = UploadStatus{Phase: UploadIdle}
	c.notice = ""
	return true
}

// Submit starts uploading the current selection. The returned call must be
// run exactly once and its result handed to Resolve.
func (c *UploadController) Submit(ctx context.Context) (UploadCall, error) {
	if c.status.Phase == UploadUploading {
		return nil, ErrUploadInFlight
	}
	if len(c.files) == 0 {
		c.status = UploadStatus{Phase: UploadIdle}
		c.notice = EmptySelectionNotice
		return nil, ErrEmptySelection
	}

	c.status = UploadStatus{Phase: UploadUploading}
	c.notice = ""

	batch := append([]File(nil), c.files...)
	logger.Debugf("upload: submitting %d file(s)", len(batch))

	return func() UploadResult {
		n, err := c.uploader.UploadDocuments(ctx, batch)
		return UploadResult{Count: n, Err: err}
	}, nil
}

// Resolve applies the outcome of a finished upload. It returns a non-nil
// event only on success.
func (c *UploadController) Resolve(res UploadResult) *DocumentsIngested {
	if c.status.Phase != UploadUploading {
		logger.Warnf("upload: dropping result outside of an upload (phase %s)", c.status.Phase)
		return nil
	}

	if res.Err != nil {
		reason := failureText(res.Err)
		c.status = UploadStatus{Phase: UploadFailed, Reason: reason}
		c.notice = "Error uploading documents: " + reason
		logger.Warnf("upload: failed: %s", reason)
		return nil
	}

	c.status = UploadStatus{Phase: UploadSucceeded, Count: res.Count}
	c.notice = fmt.Sprintf("Successfully uploaded %d document(s)", res.Count)
	c.files = nil
	logger.Infof("upload: service accepted %d document(s)", res.Count)
	return &DocumentsIngested{Count: res.Count}
}

// Files returns a copy of the staged files
func (c *UploadController) Files() []File {
	return append([]File(nil), c.files...)
}

func (c *UploadController) Status() UploadStatus {
	return c.status
}

func (c *UploadController) Uploading() bool {
	return c.status.Phase == UploadUploading
}

// Notice is the inline message for the upload panel, or "" for none.
func (c *UploadController) Notice() string {
	return c.notice
}
