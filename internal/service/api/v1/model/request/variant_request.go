package request

// SetVariantRequest 커머스 변형 강제 지정 요청
type SetVariantRequest struct {
	// 지정할 변형 식별자 (A 또는 B)
	Variant string `json:"variant" form:"variant" validate:"required,oneof=A B" korean:"변형" example:"B"`
}
