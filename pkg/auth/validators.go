package auth

// CallbackPayload is what the identity provider's popup posts back.
type CallbackPayload struct {
	Credential string `form:"credential" json:"credential" mod:"trim" validate:"required"`
}
