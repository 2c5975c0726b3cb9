package render

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FontConfig 는 문서에 쓸 한글 글꼴입니다. 실행 시작 시 한 번 정해지고 바뀌지 않습니다.
type FontConfig struct {
	Family    string
	Path      string
	Available bool
}

// 파일명으로 알 수 있는 글꼴 이름
var knownFamilies = map[string]string{
	"nanumgothic":      "NanumGothic",
	"nanumbarungothic": "NanumBarunGothic",
	"malgun":           "Malgun Gothic",
	"applesdgothicneo": "Apple SD Gothic Neo",
	"notosanskr":       "Noto Sans KR",
	"notosanscjk":      "Noto Sans CJK KR",
}

// DiscoverFont 는 후보 경로 중 처음 존재하는 글꼴 파일을 고릅니다.
// 하나도 없으면 Available=false 이고 브라우저 기본 글꼴로 출력됩니다.
func DiscoverFont(candidates []string) FontConfig {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return FontConfig{Family: familyFromPath(path), Path: path, Available: true}
		}
	}
	log.Printf("WARN: no Korean font found in %d candidates, using browser default", len(candidates))
	return FontConfig{}
}

func familyFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(stem))
	for prefix, family := range knownFamilies {
		if strings.HasPrefix(key, prefix) {
			return family
		}
	}
	return stem
}

// CSSFamily 는 font-family 값입니다.
func (f FontConfig) CSSFamily() string {
	families := []string{"'Malgun Gothic'", "'Apple SD Gothic Neo'", "'Noto Sans KR'", "sans-serif"}
	if f.Available {
		families = append([]string{"'bevauto-doc'", "'" + f.Family + "'"}, families...)
	}
	return strings.Join(families, ", ")
}

func (f FontConfig) fontFace() string {
	if !f.Available {
		return ""
	}
	src := "file://" + filepath.ToSlash(f.Path)
	if !strings.HasPrefix(filepath.ToSlash(f.Path), "/") {
		src = "file:///" + filepath.ToSlash(f.Path)
	}
	return "@font-face { font-family: 'bevauto-doc'; src: url('" + src + "'); }\n"
}
