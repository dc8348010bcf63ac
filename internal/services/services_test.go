package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/crypto/bcrypt"
)

type fakeS3 struct {
	put       *s3.PutObjectInput
	body      string
	deleted   []string
	deleteErr error
}

var _ S3API = (*fakeS3)(nil)

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) UploadPart(ctx context.Context, in *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) CreateMultipartUpload(ctx context.Context, in *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) CompleteMultipartUpload(ctx context.Context, in *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart not expected")
}

func (f *fakeS3) AbortMultipartUpload(ctx context.Context, in *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3BlobStoreUpload(t *testing.T) {
	client := &fakeS3{}
	store := NewS3BlobStoreWithClient(client, "punch-list-attachments", "https://cdn.example.com/")

	obj, err := store.Upload(context.Background(), "4/item/1700000000000-a.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if obj.URL != "https://cdn.example.com/4/item/1700000000000-a.png" {
		t.Fatalf("unexpected url %q", obj.URL)
	}
	if aws.ToString(client.put.Bucket) != "punch-list-attachments" || aws.ToString(client.put.ContentType) != "image/png" {
		t.Fatalf("unexpected put input %+v", client.put)
	}
	if client.body != "png-bytes" {
		t.Fatalf("expected body to reach s3, got %q", client.body)
	}
}

func TestS3BlobStoreDefaultURL(t *testing.T) {
	store := NewS3BlobStoreWithClient(&fakeS3{}, "bucket", "")
	obj, err := store.Upload(context.Background(), "k", "video/mp4", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if obj.URL != "https://bucket.s3.amazonaws.com/k" {
		t.Fatalf("unexpected url %q", obj.URL)
	}
}

func TestS3BlobStoreDelete(t *testing.T) {
	client := &fakeS3{}
	store := NewS3BlobStoreWithClient(client, "bucket", "")

	if err := store.Delete(context.Background(), "1/2/3-a.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(client.deleted) != 1 || client.deleted[0] != "1/2/3-a.png" {
		t.Fatalf("unexpected deletes %v", client.deleted)
	}

	client.deleteErr = errors.New("access denied")
	if err := store.Delete(context.Background(), "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestIdentityAuthenticate(t *testing.T) {
	id, err := NewIdentity("Juan.Ortiz@macproducts.net", "", "MAC", "macproducts.net")
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}

	email, err := id.Authenticate(" juan.ortiz@MACPRODUCTS.net ", "MAC")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if email != "juan.ortiz@macproducts.net" {
		t.Fatalf("expected normalized email got %q", email)
	}

	if _, err := id.Authenticate("juan.ortiz@macproducts.net", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials got %v", err)
	}
	if _, err := id.Authenticate("someone@macproducts.net", "MAC"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user got %v", err)
	}
	if _, err := id.Authenticate("juan.ortiz@gmail.com", "MAC"); !errors.Is(err, ErrDomainNotAllowed) {
		t.Fatalf("expected domain rejection got %v", err)
	}
}

func TestIdentityUsesConfiguredHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := NewIdentity("ops@macproducts.net", string(hash), "ignored", "")
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	if _, err := id.Authenticate("ops@macproducts.net", "s3cret"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := id.Authenticate("ops@macproducts.net", "ignored"); err == nil {
		t.Fatalf("expected plain password to be ignored when a hash is set")
	}
}

func TestNewIdentityRequiresSecret(t *testing.T) {
	if _, err := NewIdentity("ops@macproducts.net", "", "", ""); err == nil {
		t.Fatalf("expected error without password")
	}
}
