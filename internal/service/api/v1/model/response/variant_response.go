package response

// VariantResponse 세션의 활성 커머스 변형 응답
type VariantResponse struct {
	// 활성 변형 식별자 (A 또는 B)
	Variant string `json:"variant" example:"A"`
}
