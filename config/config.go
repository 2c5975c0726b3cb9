package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceConfig 는 입력 시트 하나의 위치와 열 이름입니다.
// HeaderRow 는 1부터 세는 헤더 행 번호입니다.
type SourceConfig struct {
	Sheet     string            `json:"sheet" yaml:"sheet"`
	HeaderRow int               `json:"headerRow" yaml:"header_row"`
	Columns   map[string]string `json:"columns" yaml:"columns"`
}

// Column 은 논리 필드명에 대응하는 실제 열 이름을 반환합니다.
func (s SourceConfig) Column(field string) string {
	if name, ok := s.Columns[field]; ok && name != "" {
		return name
	}
	return field
}

type Config struct {
	OrderFile     string `json:"orderFile" yaml:"order_file"`
	CompanyFile   string `json:"companyFile" yaml:"company_file"`
	InventoryFile string `json:"inventoryFile" yaml:"inventory_file"`
	OutputDir     string `json:"outputDir" yaml:"output_dir"`

	CSVEncoding string `json:"csvEncoding" yaml:"csv_encoding"` // utf-8 | euc-kr

	OrderSource     SourceConfig `json:"orderSource" yaml:"order_source"`
	MappingSource   SourceConfig `json:"mappingSource" yaml:"mapping_source"`
	InventorySource SourceConfig `json:"inventorySource" yaml:"inventory_source"`

	SentinelValues []string `json:"sentinelValues" yaml:"sentinel_values"`

	Renderer       string   `json:"renderer" yaml:"renderer"` // pdf | html
	FontCandidates []string `json:"fontCandidates" yaml:"font_candidates"`
	ChromePath     string   `json:"chromePath" yaml:"chrome_path"`

	ExportXLSX   bool `json:"exportXlsx" yaml:"export_xlsx"`
	ExportCSV    bool `json:"exportCsv" yaml:"export_csv"`
	ExportSQLite bool `json:"exportSqlite" yaml:"export_sqlite"`
	OpenOutput   bool `json:"openOutput" yaml:"open_output"`
}

const DefaultConfigFilePath = "./bevauto_config.json"

// 논리 필드명
const (
	FieldRecipient = "recipient"
	FieldProduct   = "product"
	FieldQuantity  = "quantity"
	FieldName      = "name"
	FieldCode      = "code"
	FieldQuantityA = "quantity_a"
	FieldQuantityB = "quantity_b"
	FieldExpiry    = "expiry"
)

// Default 는 원본 엑셀 양식에 맞춘 기본 설정입니다.
func Default() Config {
	return Config{
		OrderFile:     "TalkFile_SAP 주문파일.xlsx.xlsx",
		CompanyFile:   "TalkFile_업체명 정보파일.xlsx.xlsx",
		InventoryFile: "본두리편의점 재고실사.xlsx",
		OutputDir:     ".",
		CSVEncoding:   "utf-8",
		OrderSource: SourceConfig{
			HeaderRow: 1,
			Columns: map[string]string{
				FieldRecipient: "납품처명",
				FieldProduct:   "자재내역",
				FieldQuantity:  "주문수량",
			},
		},
		MappingSource: SourceConfig{
			Sheet:     "업체명",
			HeaderRow: 1,
			Columns: map[string]string{
				FieldName: "센터명",
				FieldCode: "코드",
			},
		},
		InventorySource: SourceConfig{
			Sheet:     "정리표",
			HeaderRow: 2,
			Columns: map[string]string{
				FieldCode:      "제품코드",
				FieldName:      "Brand Name",
				FieldQuantityA: "아주",
				FieldQuantityB: "잔량",
				FieldExpiry:    "소비기한",
			},
		},
		SentinelValues: []string{"TOTAL", "합계", "총계", "소계"},
		Renderer:       "pdf",
		FontCandidates: []string{
			"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
			"/System/Library/Fonts/AppleSDGothicNeo.ttc",
			`C:\Windows\Fonts\malgun.ttf`,
		},
		ExportXLSX: true,
	}
}

// LoadConfig 는 설정 파일을 읽습니다. 파일이 없으면 기본값을 반환합니다.
// 확장자가 .yaml/.yml 이면 YAML, 그 외에는 JSON 으로 읽습니다.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultConfigFilePath
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(file, &cfg)
	} else {
		err = json.Unmarshal(file, &cfg)
	}
	if err != nil {
		def := Default()
		applyEnv(&def)
		return def, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	fillDefaults(&cfg)
	applyEnv(&cfg)
	return cfg, nil
}

// SaveConfig 는 설정을 파일로 저장합니다.
func SaveConfig(path string, newCfg Config) error {
	if path == "" {
		path = DefaultConfigFilePath
	}
	fillDefaults(&newCfg)

	var (
		file []byte
		err  error
	)
	if isYAML(path) {
		file, err = yaml.Marshal(newCfg)
	} else {
		file, err = json.MarshalIndent(newCfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, file, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// fillDefaults 는 비어 있는 항목을 기본값으로 채웁니다.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.CSVEncoding == "" {
		cfg.CSVEncoding = def.CSVEncoding
	}
	if cfg.Renderer == "" {
		cfg.Renderer = def.Renderer
	}
	if cfg.SentinelValues == nil {
		cfg.SentinelValues = def.SentinelValues
	}
	if len(cfg.FontCandidates) == 0 {
		cfg.FontCandidates = def.FontCandidates
	}
	fillSource(&cfg.OrderSource, def.OrderSource)
	fillSource(&cfg.MappingSource, def.MappingSource)
	fillSource(&cfg.InventorySource, def.InventorySource)
}

func fillSource(s *SourceConfig, def SourceConfig) {
	if s.HeaderRow <= 0 {
		s.HeaderRow = def.HeaderRow
	}
	if s.Sheet == "" {
		s.Sheet = def.Sheet
	}
	if s.Columns == nil {
		s.Columns = make(map[string]string)
	}
	for field, name := range def.Columns {
		if s.Columns[field] == "" {
			s.Columns[field] = name
		}
	}
}

// applyEnv 는 BEVAUTO_* 환경 변수로 경로 설정을 덮어씁니다.
func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"BEVAUTO_ORDER_FILE":     &cfg.OrderFile,
		"BEVAUTO_COMPANY_FILE":   &cfg.CompanyFile,
		"BEVAUTO_INVENTORY_FILE": &cfg.InventoryFile,
		"BEVAUTO_OUTPUT_DIR":     &cfg.OutputDir,
		"BEVAUTO_CSV_ENCODING":   &cfg.CSVEncoding,
		"BEVAUTO_RENDERER":       &cfg.Renderer,
		"BEVAUTO_CHROME_PATH":    &cfg.ChromePath,
	}
	for key, dst := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("BEVAUTO_EXPORT_SQLITE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ExportSQLite = b
		}
	}
}
