package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/BruksfildServices01/provider-scheduler/internal/config"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
)

// Avatares são normalizados para webp com no máximo maxAvatarSize de lado.
const (
	maxAvatarSize = 512
	webpQuality   = 85
)

type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if cfg.S3Bucket == "" {
		return &AvatarStore{}
	}

	opts := s3.Options{
		Region:      cfg.S3Region,
		Credentials: awscreds.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &AvatarStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (a *AvatarStore) Enabled() bool {
	return a.client != nil
}

// Upload decodifica a imagem enviada, redimensiona e publica no bucket.
// Devolve a URL pública do avatar.
func (a *AvatarStore) Upload(ctx context.Context, providerID uint, r io.Reader) (string, error) {
	if !a.Enabled() {
		return "", httperr.ErrBusiness("avatar_storage_disabled")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = Resize(img, maxAvatarSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("avatars/%d.webp", providerID)

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return a.publicURL + "/" + key, nil
}

// Resize encolhe a imagem para caber em max x max mantendo a proporção.
// Imagem menor que o limite passa intocada.
func Resize(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w <= max && h <= max {
		return img
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
