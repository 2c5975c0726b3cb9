package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"bevauto/model"
)

// ProcessedCSV 는 매핑된 주문 데이터를 UTF-8 BOM 이 붙은 CSV 로 저장합니다.
// BOM 이 없으면 한글 엑셀에서 글자가 깨집니다.
func ProcessedCSV(path string, orders []model.ProcessedOrder) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(file)
	if _, err := bw.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	w := csv.NewWriter(bw)
	if err := w.Write(processedHeaders); err != nil {
		return err
	}
	for _, o := range orders {
		rec := []string{o.CompanyCode, o.CompanyNameOriginal, o.ProductName, strconv.Itoa(o.Quantity)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return bw.Flush()
}
