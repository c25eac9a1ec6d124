package publish

import (
	"context"
	stderrors "errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cyb3rnet/xhtml/internal/errors"
)

type fakeS3 struct {
	objects map[string]*s3.PutObjectInput
	bodies  map[string][]byte
	puts    int
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		objects: make(map[string]*s3.PutObjectInput),
		bodies:  make(map[string][]byte),
	}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = in
	f.bodies[key] = body
	f.puts++
	return &s3.PutObjectOutput{ETag: aws.String(`"etag"`)}, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, stderrors.New("NotFound")
	}
	return &s3.HeadObjectOutput{Metadata: obj.Metadata, ETag: aws.String(`"etag"`)}, nil
}

func TestPublish(t *testing.T) {
	fake := newFakeS3()
	p := New(fake, "site")

	body := []byte("<!DOCTYPE html><html/>")
	res, err := p.Publish(context.Background(), "docs/index.html", body, "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if res.Skipped {
		t.Error("first publish should not be skipped")
	}
	if res.Bytes != len(body) || res.ETag != `"etag"` {
		t.Errorf("result = %+v", res)
	}
	if res.Checksum != Checksum(body) {
		t.Errorf("Checksum = %q", res.Checksum)
	}

	obj := fake.objects["site/docs/index.html"]
	if obj == nil {
		t.Fatal("object not stored")
	}
	if got := aws.ToString(obj.ContentType); got != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", got)
	}
	if obj.Metadata[ChecksumKey] != res.Checksum {
		t.Errorf("metadata = %v", obj.Metadata)
	}
	if string(fake.bodies["site/docs/index.html"]) != string(body) {
		t.Errorf("body = %q", fake.bodies["site/docs/index.html"])
	}
}

func TestPublishSkipsUnchanged(t *testing.T) {
	fake := newFakeS3()
	p := New(fake, "site")
	ctx := context.Background()
	body := []byte("same")

	if _, err := p.Publish(ctx, "index.html", body, "text/html"); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	res, err := p.Publish(ctx, "index.html", body, "text/html")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if !res.Skipped || fake.puts != 1 {
		t.Errorf("Skipped = %v, puts = %d", res.Skipped, fake.puts)
	}

	if _, err := p.Publish(ctx, "index.html", []byte("changed"), "text/html"); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if fake.puts != 2 {
		t.Errorf("changed body should upload, puts = %d", fake.puts)
	}

	forced := New(fake, "site", WithForce(true))
	res, err = forced.Publish(ctx, "index.html", []byte("changed"), "text/html")
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if res.Skipped || fake.puts != 3 {
		t.Errorf("forced: Skipped = %v, puts = %d", res.Skipped, fake.puts)
	}
}

func TestPublishErrors(t *testing.T) {
	failing := newFakeS3()
	failing.putErr = stderrors.New("access denied")

	tests := []struct {
		name   string
		client API
		bucket string
		key    string
	}{
		{"no bucket", newFakeS3(), "", "index.html"},
		{"no key", newFakeS3(), "site", ""},
		{"put fails", failing, "site", "index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.client, tt.bucket).Publish(context.Background(), tt.key, []byte("x"), "text/html")
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.CodeOf(err); code != errors.CodePublishFailed {
				t.Errorf("code = %q, want %q", code, errors.CodePublishFailed)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("a"))
	if len(a) != 64 {
		t.Errorf("len = %d, want 64", len(a))
	}
	if a == Checksum([]byte("b")) {
		t.Error("different bodies should differ")
	}
	if a != Checksum([]byte("a")) {
		t.Error("checksum should be stable")
	}
}

func TestNewClient(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	c := NewClient(ClientOptions{Endpoint: "http://localhost:9000", PathStyle: true})
	o := c.Options()
	if o.Region != DefaultRegion {
		t.Errorf("Region = %q", o.Region)
	}
	if aws.ToString(o.BaseEndpoint) != "http://localhost:9000" || !o.UsePathStyle {
		t.Errorf("endpoint = %q, pathStyle = %v", aws.ToString(o.BaseEndpoint), o.UsePathStyle)
	}
	if _, ok := o.Credentials.(aws.AnonymousCredentials); !ok {
		t.Errorf("Credentials = %T, want anonymous", o.Credentials)
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")

	creds, err := envCredentials().Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve error: %v", err)
	}
	if creds.AccessKeyID != "AKID" || creds.SecretAccessKey != "secret" || creds.SessionToken != "token" {
		t.Errorf("creds = %+v", creds)
	}
}
