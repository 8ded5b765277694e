package request

import "time"

type SubmitDepositRequest struct {
	AmountPaise int64  `json:"amount_paise" binding:"required,gt=0"`
	UTR         string `json:"utr" binding:"required"`
}

type CreateGiftCodeRequest struct {
	AmountPaise     int64      `json:"amount_paise" binding:"required,gt=0"`
	MaxUses         int32      `json:"max_uses" binding:"required,gt=0"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	MinDepositPaise int64      `json:"min_deposit_paise" binding:"min=0"`
}

type RedeemGiftCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type TransferRequest struct {
	ToUserID    int64  `json:"to_user_id" binding:"required"`
	AmountPaise int64  `json:"amount_paise" binding:"required,gt=0"`
	Note        string `json:"note,omitempty"`
}

type RegisterRequest struct {
	UserID       int64  `json:"user_id" binding:"required"`
	FirstName    string `json:"first_name,omitempty"`
	Username     string `json:"username,omitempty"`
	ReferralCode string `json:"referral_code,omitempty"`
}

type SetAccessRequest struct {
	ChannelJoined bool `json:"channel_joined"`
	TermsAccepted bool `json:"terms_accepted"`
}
