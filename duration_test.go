package main

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input any
		want  int
	}{
		{"00:01:53", 113},
		{"00:00:00", 0},
		{"01:00:00", 3600},
		{"10:20:30", 37230},
		{"99:99:99", 362439},
		{"00:00:00:00", 0},
		{"00:00:01:xx", 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.input), func(t *testing.T) {
			got, err := Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertAllTwoDigitSegments(t *testing.T) {
	for v := 0; v < 100; v++ {
		s := fmt.Sprintf("%02d", v)
		got, err := ConvertString(s + ":" + s + ":" + s)
		require.NoError(t, err, s)
		assert.Equal(t, v*3600+v*60+v, got, s)
	}
}

func TestConvertInvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		segment string
	}{
		{"single string", "a", "hours"},
		{"empty", "", "hours"},
		{"two segments", "00:00", "seconds"},
		{"invalid hour", "aa:00:00", "hours"},
		{"invalid minute", "00:aa:00", "minutes"},
		{"invalid second", "00:00:aa", "seconds"},
		{"invalid size with zeros", "000:000:123", "hours"},
		{"invalid size without zeros", "123:123:123", "hours"},
		{"one digit", "1:00:00", "hours"},
		{"half numeric", "0a:00:00", "hours"},
		{"sign", "+1:00:00", "hours"},
		{"negative", "-1:00:00", "hours"},
		{"negative minute", "00:-1:00", "minutes"},
		{"space", " 1:00:00", "hours"},
		{"empty minute", "00::00", "minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.NotErrorIs(t, err, ErrNotAString)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.input, fe.Input)
			assert.Equal(t, tt.segment, fe.Segment)
		})
	}
}

func TestConvertNotAString(t *testing.T) {
	for _, input := range []any{15, 15.0, nil, true, []byte("00:00:01"), []string{"00:00:01"}} {
		t.Run(fmt.Sprintf("%T", input), func(t *testing.T) {
			_, err := Convert(input)
			assert.ErrorIs(t, err, ErrNotAString)
			assert.NotErrorIs(t, err, ErrInvalidFormat)

			var te *TypeError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, input, te.Value)
		})
	}
}

func TestConvertDeterministic(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := Convert("00:01:53")
				assert.NoError(t, err)
				assert.Equal(t, 113, got)

				_, err = Convert("aa:00:00")
				assert.ErrorIs(t, err, ErrInvalidFormat)
			}
		}()
	}
	wg.Wait()
}

func TestBadgeSeconds(t *testing.T) {
	tests := []struct {
		badge      string
		normalized string
		want       int
		wantErr    bool
	}{
		{badge: "4:05", normalized: "00:04:05", want: 245},
		{badge: "12:34", normalized: "00:12:34", want: 754},
		{badge: " 1:02:03 ", normalized: "01:02:03", want: 3723},
		{badge: "10:00:00", normalized: "10:00:00", want: 36000},
		{badge: "LIVE", normalized: "LIVE", wantErr: true},
		{badge: "100:00:00", normalized: "100:00:00", wantErr: true},
		{badge: "1:2:3:4", normalized: "1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.badge, func(t *testing.T) {
			assert.Equal(t, tt.normalized, NormalizeBadge(tt.badge))

			got, err := BadgeSeconds(tt.badge)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
