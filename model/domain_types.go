package model

// MappingEntry 는 업체명 정보 파일(업체명 시트)의 1행입니다.
type MappingEntry struct {
	DisplayName   string `db:"display_name" json:"displayName"`
	CanonicalCode string `db:"canonical_code" json:"canonicalCode"`
}
