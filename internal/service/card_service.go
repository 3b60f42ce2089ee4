//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"lingua/backend/internal/model"
	"lingua/backend/internal/repository"
	"lingua/backend/pkg/sanitizer"
)

const qrSize = 256

type CardInput struct {
	Name    string
	Title   string
	Company string
	Phone   string
	Email   string
}

type BusinessCardService interface {
	Create(ctx context.Context, in CardInput) (model.BusinessCard, error)
	List(ctx context.Context) ([]model.BusinessCard, error)
}

type businessCardService struct {
	cards repository.BusinessCardRepository
}

func NewBusinessCardService(cards repository.BusinessCardRepository) BusinessCardService {
	return &businessCardService{cards: cards}
}

func (s *businessCardService) Create(ctx context.Context, in CardInput) (model.BusinessCard, error) {
	card := model.BusinessCard{
		Name:    sanitizer.PlainText(in.Name),
		Title:   sanitizer.PlainText(in.Title),
		Company: sanitizer.PlainText(in.Company),
		Phone:   sanitizer.PlainText(in.Phone),
		Email:   sanitizer.PlainText(in.Email),
	}
	if card.Name == "" {
		return model.BusinessCard{}, ErrInvalid
	}

	qr, err := EncodeQRCode(CardText(card))
	if err != nil {
		return model.BusinessCard{}, err
	}
	card.QRCode = qr

	return s.cards.Create(ctx, card)
}

func (s *businessCardService) List(ctx context.Context) ([]model.BusinessCard, error) {
	return s.cards.List(ctx)
}

// CardText renders the labelled contact block encoded into the QR code.
func CardText(card model.BusinessCard) string {
	var b strings.Builder
	fmt.Fprintf(&b, "姓名: %s\n", card.Name)
	fmt.Fprintf(&b, "職稱: %s\n", card.Title)
	fmt.Fprintf(&b, "公司: %s\n", card.Company)
	fmt.Fprintf(&b, "電話: %s\n", card.Phone)
	fmt.Fprintf(&b, "電子郵件: %s", card.Email)
	return b.String()
}

// EncodeQRCode returns a base64 PNG of content at low error correction.
func EncodeQRCode(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Low, qrSize)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
