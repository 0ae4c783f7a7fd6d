package catalog

import (
	"github.com/highcountrygear/storefront-server/internal/service/contract"
)

const imageBaseURL = "https://pub-cdn.sider.ai/u/U08XHOG6875/web-coder/68ba4605cac2f2af6f8348bf/resource"

// builtinCategories 홈 화면에 노출되는 전체 카테고리 목록입니다.
func builtinCategories() []contract.Category {
	return []contract.Category{
		{ID: "headlamps", Name: "Headlamps", ImageURL: imageBaseURL + "/30dcc8df-f58b-442a-990c-45c72533d70a.jpg"},
		{ID: "water-bottles", Name: "Water Bottles", ImageURL: imageBaseURL + "/d180bc52-8932-4546-b3cd-7f6e4c2f90b1.jpg"},
		{ID: "cookware", Name: "Camping Cookware", ImageURL: imageBaseURL + "/e8dbcacb-ce29-48d3-8ec3-1afdcd05f702.jpg"},
		{ID: "knives", Name: "Knives", ImageURL: imageBaseURL + "/3edf3a1b-7e24-416d-9204-9e4c0a7817b5.jpg"},
		{ID: "multi-tools", Name: "Multi-Tools", ImageURL: imageBaseURL + "/9ee36fc7-3601-4cda-8ad2-1e4a51f860d1.jpg"},
		{ID: "base-layers", Name: "Base Layers", ImageURL: imageBaseURL + "/6771b8b8-70ae-4529-9398-4827e1ef5869.jpg"},
		{ID: "hiking-socks", Name: "Hiking Socks", ImageURL: imageBaseURL + "/aedc877b-d3f4-43de-a1ee-136b3cb387e4.jpg"},
		{ID: "gloves", Name: "Gloves", ImageURL: imageBaseURL + "/5ebef956-0c3b-4f4d-9009-ce0a75ec7582.jpg"},
		{ID: "hats", Name: "Hats", ImageURL: imageBaseURL + "/697b844e-a15b-4985-8065-b932b3ab2a10.jpg"},
	}
}

// builtinProducts 추천(Editor's Pick) 상품 목록입니다. 가격은 USD 기준입니다.
func builtinProducts() []contract.Product {
	return []contract.Product{
		{
			ID:             "hl-peak-200",
			CategoryID:     "headlamps",
			Name:           "Peak 200 Headlamp",
			Price:          34.99,
			CompareAtPrice: 44.99,
			Rating:         4.7,
			Badge:          contract.BadgeBestSeller,
			ImageURL:       imageBaseURL + "/7249da02-7d81-4046-8891-5f34c220288b.jpg",
			Description:    "Featherlight headlamp with 200 lumens, long-lasting battery, and weatherproof housing. Perfect for alpine starts.",
			Stock:          7,
		},
		{
			ID:             "wb-titan-1l",
			CategoryID:     "water-bottles",
			Name:           "Titan 1L Bottle",
			Price:          24.00,
			CompareAtPrice: 32.00,
			Rating:         4.6,
			Badge:          contract.BadgeNew,
			ImageURL:       imageBaseURL + "/39901b7a-102b-43ad-95a6-488724ef98af.jpg",
			Description:    "Double-wall insulated titanium bottle keeps drinks cold for 24h and hot for 12h. Built to outlast the trail.",
			Stock:          23,
		},
		{
			ID:             "ck-trailset",
			CategoryID:     "cookware",
			Name:           "Trailset Cookware Duo",
			Price:          54.95,
			CompareAtPrice: 69.95,
			Rating:         4.5,
			ImageURL:       imageBaseURL + "/22fff4c7-0477-4f26-8a1f-06a58110034b.jpg",
			Description:    "Ultralight anodized aluminum pot and pan set with heat-diffusing base and nested design to save pack space.",
			Stock:          5,
		},
		{
			ID:             "kn-edge-pro",
			CategoryID:     "knives",
			Name:           "Edge Pro Folding Knife",
			Price:          69.00,
			CompareAtPrice: 89.00,
			Rating:         4.8,
			Badge:          contract.BadgeLimited,
			ImageURL:       imageBaseURL + "/4ec0194e-0599-4e92-b7a1-6107fa7a44bf.jpg",
			Description:    "Premium steel blade with secure lock and ergonomic grip. Precision cutting in a compact, trail-ready form.",
			Stock:          3,
		},
		{
			ID:             "mt-compact",
			CategoryID:     "multi-tools",
			Name:           "Compact Multi-Tool",
			Price:          44.00,
			CompareAtPrice: 59.00,
			Rating:         4.6,
			ImageURL:       imageBaseURL + "/85081df3-56e9-45a9-853f-5382e8715d7c.jpg",
			Description:    "14 essential functions packed into a pocket-sized body. Pliers, blade, drivers, and more with smooth pivots.",
			Stock:          15,
		},
		{
			ID:             "bl-thermal-crew",
			CategoryID:     "base-layers",
			Name:           "Thermal Crew Base Layer",
			Price:          59.00,
			CompareAtPrice: 79.00,
			Rating:         4.4,
			ImageURL:       imageBaseURL + "/5adfc9b0-98ef-476b-a850-1ccc2c70b45a.jpg",
			Description:    "Moisture-wicking, fast-drying thermal crew that traps warmth and breathes during high-output ascents.",
			Stock:          11,
		},
	}
}
