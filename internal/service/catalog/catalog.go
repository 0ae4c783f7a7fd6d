// Package catalog 스토어프론트의 상품/카테고리 카탈로그를 제공합니다.
//
// 카탈로그는 서버 시작 시 내장 데이터로 초기화되는 읽기 전용 조회 계층이며,
// 상품 탐색과 재고 조회의 단일 출처(Single Source of Truth)입니다.
package catalog

import (
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	apperrors "github.com/highcountrygear/storefront-server/internal/pkg/errors"
	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

// Catalog 카테고리와 상품의 읽기 전용 조회 기능을 제공합니다.
type Catalog struct {
	categories []contract.Category
	products   []contract.Product

	categoryByID map[contract.CategoryID]*contract.Category
	productByID  map[contract.ProductID]*contract.Product
}

// New 내장 카탈로그 데이터로 초기화 된 Catalog 인스턴스를 생성합니다.
func New() *Catalog {
	return newWith(builtinCategories(), builtinProducts())
}

func newWith(categories []contract.Category, products []contract.Product) *Catalog {
	c := &Catalog{
		categories:   categories,
		products:     products,
		categoryByID: make(map[contract.CategoryID]*contract.Category, len(categories)),
		productByID:  make(map[contract.ProductID]*contract.Product, len(products)),
	}
	for i := range c.categories {
		c.categoryByID[c.categories[i].ID] = &c.categories[i]
	}
	for i := range c.products {
		c.productByID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// NormalizeSlug 임의의 표시용 이름을 카탈로그 식별자 형식(kebab-case)으로 정규화합니다.
//
// 예: "Water Bottles" -> "water-bottles", "multiTools" -> "multi-tools"
func NormalizeSlug(s string) string {
	return strcase.ToKebab(strings.TrimSpace(s))
}

// Categories 전체 카테고리 목록을 반환합니다. 반환되는 슬라이스는 수정해서는 안 됩니다.
func (c *Catalog) Categories() []contract.Category {
	return c.categories
}

// Products 전체 상품 목록을 반환합니다. 반환되는 슬라이스는 수정해서는 안 됩니다.
func (c *Catalog) Products() []contract.Product {
	return c.products
}

// Product 상품 ID로 상품을 조회합니다.
// 존재하지 않는 경우 NotFound 타입의 에러를 반환합니다.
func (c *Catalog) Product(id contract.ProductID) (*contract.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	p, ok := c.productByID[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (product_id=%s)", id)
	}
	return p, nil
}

// Category 카테고리 ID로 카테고리를 조회합니다.
// 존재하지 않는 경우 NotFound 타입의 에러를 반환합니다.
func (c *Catalog) Category(id contract.CategoryID) (*contract.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	cat, ok := c.categoryByID[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.NotFound, "카테고리를 찾을 수 없습니다 (category_id=%s)", id)
	}
	return cat, nil
}

// ProductsByCategory 지정된 카테고리에 속한 상품 목록을 반환합니다.
// 카테고리가 존재하지 않는 경우 NotFound 타입의 에러를 반환합니다.
func (c *Catalog) ProductsByCategory(id contract.CategoryID) ([]contract.Product, error) {
	if _, err := c.Category(id); err != nil {
		return nil, err
	}

	var result []contract.Product
	for _, p := range c.products {
		if p.CategoryID == id {
			result = append(result, p)
		}
	}
	return result, nil
}

// Search 상품명에 질의어가 포함된 상품 목록을 대소문자 구분 없이 검색합니다.
// 결과는 평점 내림차순으로 정렬됩니다.
func (c *Catalog) Search(query string) []contract.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var result []contract.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rating > result[j].Rating
	})
	return result
}
