package usecase_test

import (
	"context"
	"errors"
	"testing"

	"momentum-tab/internal/background/usecase"
	"momentum-tab/pkg/log"
	"momentum-tab/pkg/unsplash"
)

type fakeSource struct {
	calls int
	errs  []error
}

func (f *fakeSource) Random(ctx context.Context, req unsplash.RandomRequest) (*unsplash.Photo, error) {
	f.calls++
	if len(f.errs) >= f.calls && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return &unsplash.Photo{
		ID:   "p1",
		URLs: unsplash.URLs{Regular: "https://img/r", Full: "https://img/f"},
		User: unsplash.User{Name: "Jane Doe"},
	}, nil
}

func TestCurrent_CachesForever(t *testing.T) {
	src := &fakeSource{}
	uc := usecase.New(log.NewNop(), src, unsplash.RandomRequest{Query: unsplash.DefaultQuery})

	for i := 0; i < 3; i++ {
		p, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("Current() error = %v", err)
		}
		if p.URL != "https://img/r" || p.Author != "Jane Doe" {
			t.Errorf("Current() = %+v", p)
		}
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}
}

func TestCurrent_RetriesOnce(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantErr   bool
		wantCalls int
	}{
		{name: "second attempt succeeds", errs: []error{errors.New("503")}, wantCalls: 2},
		{name: "both attempts fail", errs: []error{errors.New("503"), errors.New("503")}, wantErr: true, wantCalls: 2},
		{name: "missing key is not retried", errs: []error{unsplash.ErrMissingAccessKey}, wantErr: true, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{errs: tt.errs}
			uc := usecase.New(log.NewNop(), src, unsplash.RandomRequest{})

			_, err := uc.Current(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Current() error = %v, wantErr %v", err, tt.wantErr)
			}
			if src.calls != tt.wantCalls {
				t.Errorf("source calls = %d, want %d", src.calls, tt.wantCalls)
			}
		})
	}
}
