// internal/session/session.go

// Session ties the upload and chat controllers together through a single
// gate: chat accepts questions once any upload has succeeded.
package session

import "compass/internal/logger"

// Gate is the sticky "documents available" flag. Once open it stays open,
// even if later uploads fail.
type Gate struct {
	open bool
}

func (g *Gate) Open() {
	g.open = true
}

func (g *Gate) DocumentsAvailable() bool {
	return g.open
}

// Session is the page-level coordinator
type Session struct {
	gate   Gate
	upload *UploadController
	chat   *ChatController
}

func NewSession(svc Service) *Session {
	s := &Session{}
	s.upload = NewUploadController(svc)
	s.chat = NewChatController(svc, &s.gate)
	return s
}

// ResolveUpload applies an upload result and opens the gate on success.
func (s *Session) ResolveUpload(res UploadResult) *DocumentsIngested {
	ev := s.upload.Resolve(res)
	if ev != nil {
		if !s.gate.DocumentsAvailable() {
			logger.Infof("session: documents available, chat enabled")
		}
		s.gate.Open()
	}
	return ev
}

func (s *Session) DocumentsAvailable() bool {
	return s.gate.DocumentsAvailable()
}

func (s *Session) Upload() *UploadController {
	return s.upload
}

func (s *Session) Chat() *ChatController {
	return s.chat
}
