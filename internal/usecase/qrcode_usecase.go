package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html"

	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// QRCodeUsecase derives the public emergency link for the owner's
// profile and renders it as a scannable image. Nothing here mutates
// stored state.
type QRCodeUsecase interface {
	Link(ctx context.Context, userID uuid.UUID) (string, error)
	PNG(ctx context.Context, userID uuid.UUID) ([]byte, error)
	PrintPage(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type QRCode struct {
	profiles profile.Repository
	origin   string
}

func NewQRCodeUsecase(profiles profile.Repository, origin string) *QRCode {
	return &QRCode{profiles: profiles, origin: origin}
}

// EmergencyLink is the exact QR payload: no metadata, signature, or
// expiry beyond the origin and profile id.
func EmergencyLink(origin, profileID string) string {
	return fmt.Sprintf("%s/emergency/%s", origin, profileID)
}

func (u *QRCode) Link(ctx context.Context, userID uuid.UUID) (string, error) {
	p, err := u.ownerProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return EmergencyLink(u.origin, p.ID.String()), nil
}

func (u *QRCode) PNG(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	p, err := u.ownerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(EmergencyLink(u.origin, p.ID.String()), qrcode.Medium, qrImageSize)
}

// PrintPage renders a self-contained printable page with the QR image
// inlined and the emergency contact spelled out for responders.
func (u *QRCode) PrintPage(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	p, err := u.ownerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(EmergencyLink(u.origin, p.ID.String()), qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, err
	}

	page := fmt.Sprintf(printPageTemplate,
		base64.StdEncoding.EncodeToString(png),
		html.EscapeString(p.EmergencyContactName),
		html.EscapeString(p.EmergencyContactPhone),
	)
	return []byte(page), nil
}

func (u *QRCode) ownerProfile(ctx context.Context, userID uuid.UUID) (profile.MedicalProfile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.MedicalProfile{}, ErrProfileNotFound
		}
		return profile.MedicalProfile{}, err
	}
	return p, nil
}

const printPageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>QRupay - Emergency QR Code</title>
<style>
body { font-family: Arial, sans-serif; text-align: center; padding: 20px; }
.qr-container { margin: 20px auto; }
.contact-info { background: #f5f5f5; padding: 15px; margin: 20px; border-radius: 8px; }
.instructions { border: 2px solid #dc2626; padding: 15px; margin: 20px; border-radius: 8px; background: #fee2e2; }
@media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
<h1>QRupay Emergency QR Code</h1>
<div class="qr-container">
<img src="data:image/png;base64,%s" alt="Emergency QR Code" style="width: 200px; height: 200px;" />
</div>
<div class="instructions">
<h3>FOR EMERGENCY RESPONDERS:</h3>
<p>Scan this QR code with any smartphone camera to access critical medical information</p>
</div>
<div class="contact-info">
<h3>Emergency Contact</h3>
<p><strong>%s</strong></p>
<p><strong>%s</strong></p>
</div>
<p><small>Keep this QR code in your wallet, on your phone, or visible in emergency situations</small></p>
</body>
</html>
`
