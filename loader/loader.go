package loader

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"bevauto/config"
	"bevauto/model"
	"bevauto/parsers"
	"bevauto/pipeline"
)

// TableOptions 는 입력 파일 하나를 읽는 방법입니다.
type TableOptions struct {
	Sheet     string // xlsx 만 사용. 비어 있으면 첫 시트
	HeaderRow int
	Encoding  string // csv 만 사용. utf-8 | euc-kr | cp949
}

// OpenTable 은 .xlsx/.xlsm 또는 .csv 파일을 Table 로 읽습니다.
// 파일이나 시트가 없으면 pipeline.ErrMissingSource 를 감싼 오류를 반환합니다.
func OpenTable(stage, path string, opts TableOptions) (*parsers.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, pipeline.MissingSource(stage, path)
		}
		return nil, &pipeline.StageError{Stage: stage, Path: path, Err: err}
	}

	var (
		table *parsers.Table
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		table, err = openWorkbook(path, opts)
	case ".csv":
		table, err = openCSV(path, opts)
	default:
		err = fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		if errors.Is(err, parsers.ErrSheetNotFound) {
			return nil, &pipeline.StageError{
				Stage: stage,
				Path:  path + "#" + opts.Sheet,
				Err:   fmt.Errorf("%w: %v", pipeline.ErrMissingSource, err),
			}
		}
		return nil, &pipeline.StageError{Stage: stage, Path: path, Err: err}
	}
	return table, nil
}

func openWorkbook(path string, opts TableOptions) (*parsers.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()
	return parsers.ReadSheet(f, filepath.Base(path), opts.Sheet, opts.HeaderRow)
}

func openCSV(path string, opts TableOptions) (*parsers.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	r, err := decodeReader(f, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return parsers.ReadCSV(r, filepath.Base(path), opts.HeaderRow)
}

// decodeReader 는 csv 문자 코드를 UTF-8 로 바꾸는 reader 를 만듭니다.
// 한국어 윈도우 엑셀의 "CSV" 저장은 CP949(EUC-KR 상위 호환)입니다.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(encoding), "_", "-")) {
	case "", "utf-8", "utf8":
		return r, nil
	case "euc-kr", "euckr", "cp949":
		return transform.NewReader(r, korean.EUCKR.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported csv encoding %q", encoding)
	}
}

// FileSource 는 설정의 파일 경로에서 주문, 업체명 매핑, 재고실사를 읽습니다.
type FileSource struct {
	cfg config.Config
}

func NewFileSource(cfg config.Config) *FileSource {
	return &FileSource{cfg: cfg}
}

func (s *FileSource) options(src config.SourceConfig) TableOptions {
	return TableOptions{Sheet: src.Sheet, HeaderRow: src.HeaderRow, Encoding: s.cfg.CSVEncoding}
}

// LoadOrders 는 주문 파일을 읽습니다.
func (s *FileSource) LoadOrders() ([]model.OrderRecord, error) {
	log.Printf("Loading orders from %s...", s.cfg.OrderFile)
	table, err := OpenTable("load", s.cfg.OrderFile, s.options(s.cfg.OrderSource))
	if err != nil {
		return nil, err
	}
	records, skipped, err := parsers.ParseOrders(table, s.cfg.OrderSource)
	if err != nil {
		return nil, &pipeline.StageError{Stage: "load", Path: s.cfg.OrderFile, Err: err}
	}
	if skipped > 0 {
		log.Printf("WARN: %d invalid order rows skipped", skipped)
	}
	return records, nil
}

// LoadMapping 은 업체명 정보 파일을 읽습니다.
func (s *FileSource) LoadMapping() ([]model.MappingEntry, error) {
	log.Printf("Loading company mapping from %s...", s.cfg.CompanyFile)
	table, err := OpenTable("load", s.cfg.CompanyFile, s.options(s.cfg.MappingSource))
	if err != nil {
		return nil, err
	}
	entries, err := parsers.ParseMapping(table, s.cfg.MappingSource)
	if err != nil {
		return nil, &pipeline.StageError{Stage: "load", Path: s.cfg.CompanyFile, Err: err}
	}
	return entries, nil
}

// LoadInventory 는 재고실사 파일을 읽습니다.
func (s *FileSource) LoadInventory() ([]model.InventoryLine, error) {
	log.Printf("Loading inventory from %s...", s.cfg.InventoryFile)
	table, err := OpenTable("inventory", s.cfg.InventoryFile, s.options(s.cfg.InventorySource))
	if err != nil {
		return nil, err
	}
	lines, skipped, err := parsers.ParseInventory(table, s.cfg.InventorySource)
	if err != nil {
		return nil, &pipeline.StageError{Stage: "inventory", Path: s.cfg.InventoryFile, Err: err}
	}
	if skipped > 0 {
		log.Printf("WARN: %d invalid inventory rows skipped", skipped)
	}
	return lines, nil
}
