package model

import "time"

// BusinessCard is a contact card with its QR code stored as base64 PNG.
type BusinessCard struct {
	ID        int64
	Name      string
	Title     string
	Company   string
	Phone     string
	Email     string
	QRCode    string
	CreatedAt time.Time
}
