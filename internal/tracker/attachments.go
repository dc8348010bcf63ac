package tracker

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"projectcenter/internal/interfaces"
	"projectcenter/internal/models"
)

// MaxAttachmentSize is the largest file accepted for a punch list item.
const MaxAttachmentSize int64 = 25 << 20

var attachmentTypes = map[string]models.AttachmentType{
	"image/jpeg":      models.AttachmentImage,
	"image/png":       models.AttachmentImage,
	"image/gif":       models.AttachmentImage,
	"image/webp":      models.AttachmentImage,
	"video/mp4":       models.AttachmentVideo,
	"video/quicktime": models.AttachmentVideo,
	"video/webm":      models.AttachmentVideo,
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Upload is one file handed in for a punch list item.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AttachmentType maps a MIME type onto image or video. Parameters such as
// "; charset" are ignored.
func AttachmentType(contentType string) (models.AttachmentType, bool) {
	mt := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	kind, ok := attachmentTypes[mt]
	return kind, ok
}

// SanitizeFileName replaces every character outside [A-Za-z0-9.-] with "_".
func SanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// AddAttachment validates the file, uploads it and records the reference on
// the item. Nothing leaves the process until validation has passed, and the
// item is untouched on any failure. The tracker lock is not held during the
// upload; the project and item are looked up again before committing.
func (t *Tracker) AddAttachment(ctx context.Context, actor string, projectID int64, itemID string, up Upload) (*models.PunchListAttachment, error) {
	kind, path, blobs, err := t.prepareAttachment(projectID, itemID, up)
	if err != nil {
		return nil, err
	}

	stored, err := blobs.Upload(ctx, path, up.ContentType, up.Body)
	if err != nil {
		log.Printf("Error uploading %s: %v", path, err)
		return nil, &BackendError{Op: "upload attachment", Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	discard := func() {
		if derr := blobs.Delete(ctx, stored.Path); derr != nil {
			log.Printf("Error removing orphaned upload %s: %v", stored.Path, derr)
		}
	}

	i := t.indexOf(projectID)
	if i < 0 {
		discard()
		return nil, ErrPunchItemNotFound
	}
	j := t.projects[i].PunchItem(itemID)
	if j < 0 {
		discard()
		return nil, ErrPunchItemNotFound
	}
	if len(t.projects[i].PunchList[j].Attachments) >= t.maxAttachments {
		discard()
		return nil, invalid("file", fmt.Sprintf("maximum of %d attachments per item", t.maxAttachments))
	}

	att := models.PunchListAttachment{
		ID:         t.NewID(),
		URL:        stored.URL,
		Path:       stored.Path,
		Type:       kind,
		FileName:   up.FileName,
		FileSize:   up.Size,
		UploadedAt: t.Now().UTC(),
		UploadedBy: actor,
	}

	updated := t.projects[i].Clone()
	updated.PunchList[j].Attachments = append(updated.PunchList[j].Attachments, att)
	if err := t.repo.Update(ctx, &updated); err != nil {
		log.Printf("Error saving attachment on project %d: %v", projectID, err)
		discard()
		return nil, &BackendError{Op: "update project", Err: err}
	}
	t.projects[i] = updated
	return &att, nil
}

// prepareAttachment runs every check that needs no I/O and picks the object path.
func (t *Tracker) prepareAttachment(projectID int64, itemID string, up Upload) (models.AttachmentType, string, interfaces.BlobStore, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.indexOf(projectID)
	if i < 0 {
		return "", "", nil, ErrProjectNotFound
	}
	j := t.projects[i].PunchItem(itemID)
	if j < 0 {
		return "", "", nil, ErrPunchItemNotFound
	}
	if n := len(t.projects[i].PunchList[j].Attachments); n >= t.maxAttachments {
		return "", "", nil, invalid("file", fmt.Sprintf("maximum of %d attachments per item", t.maxAttachments))
	}
	if up.Size > MaxAttachmentSize {
		return "", "", nil, invalid("file", "file exceeds the 25MB limit")
	}
	kind, ok := AttachmentType(up.ContentType)
	if !ok {
		return "", "", nil, invalid("file", fmt.Sprintf("unsupported file type %q", up.ContentType))
	}
	if t.blobs == nil {
		return "", "", nil, ErrNoBlobStore
	}

	path := fmt.Sprintf("%d/%s/%d-%s", projectID, itemID, t.Now().UnixMilli(), SanitizeFileName(up.FileName))
	return kind, path, t.blobs, nil
}

// RemoveAttachment deletes the blob first. If that fails the reference stays
// in place and the error is returned. The blob delete runs without the
// tracker lock.
func (t *Tracker) RemoveAttachment(ctx context.Context, actor string, projectID int64, itemID, attachmentID string) error {
	t.mu.RLock()
	i, j, k, err := t.findAttachment(projectID, itemID, attachmentID)
	if err != nil {
		t.mu.RUnlock()
		return err
	}
	path := t.projects[i].PunchList[j].Attachments[k].Path
	blobs := t.blobs
	t.mu.RUnlock()

	if blobs == nil {
		return ErrNoBlobStore
	}
	if err := blobs.Delete(ctx, path); err != nil {
		log.Printf("Error deleting attachment %s: %v", path, err)
		return &BackendError{Op: "delete attachment", Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i, j, k, err = t.findAttachment(projectID, itemID, attachmentID)
	if err != nil {
		return err
	}
	updated := t.projects[i].Clone()
	atts := updated.PunchList[j].Attachments
	updated.PunchList[j].Attachments = append(atts[:k], atts[k+1:]...)
	if err := t.repo.Update(ctx, &updated); err != nil {
		log.Printf("Error saving project %d after %s removed attachment: %v", projectID, actor, err)
		return &BackendError{Op: "update project", Err: err}
	}
	t.projects[i] = updated
	return nil
}

// findAttachment resolves indexes into t.projects. Callers hold t.mu.
func (t *Tracker) findAttachment(projectID int64, itemID, attachmentID string) (int, int, int, error) {
	i := t.indexOf(projectID)
	if i < 0 {
		return 0, 0, 0, ErrProjectNotFound
	}
	j := t.projects[i].PunchItem(itemID)
	if j < 0 {
		return 0, 0, 0, ErrPunchItemNotFound
	}
	for k, att := range t.projects[i].PunchList[j].Attachments {
		if att.ID == attachmentID {
			return i, j, k, nil
		}
	}
	return 0, 0, 0, ErrAttachmentNotFound
}
