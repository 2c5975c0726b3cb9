package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSource 는 필수 입력 파일이나 시트가 없을 때의 오류입니다. 실행을 중단합니다.
	ErrMissingSource = errors.New("missing source")
	// ErrInvalidState 는 단계를 순서에 맞지 않게 호출했을 때의 오류입니다.
	ErrInvalidState = errors.New("invalid pipeline state")
)

// StageError 는 치명적 오류에 단계명과 파일 경로를 붙입니다.
type StageError struct {
	Stage string
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MissingSource 는 path 가 없다는 StageError 를 만듭니다.
func MissingSource(stage, path string) error {
	return &StageError{Stage: stage, Path: path, Err: ErrMissingSource}
}

// RenderFailure 는 업체 1곳(또는 재고표 1건)의 출력 실패입니다. 실행은 계속됩니다.
type RenderFailure struct {
	Renderer    string
	CompanyCode string
	Err         error
}

func (f *RenderFailure) Error() string {
	if f.CompanyCode == "" {
		return fmt.Sprintf("render %s: %v", f.Renderer, f.Err)
	}
	return fmt.Sprintf("render %s for %s: %v", f.Renderer, f.CompanyCode, f.Err)
}

func (f *RenderFailure) Unwrap() error {
	return f.Err
}
