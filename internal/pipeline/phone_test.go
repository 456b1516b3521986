package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ngscreen/internal/ingest"
	"github.com/sells-group/ngscreen/internal/model"
)

func TestPhonePipelineCounts(t *testing.T) {
	input := exportOf(
		addressHeader,
		`"1"|"Ada"|"ada@example.com"|"08031234567"|""|""|""|""`,
		`"2"|"Bola"|"bola@example.com"|"+234 803 123 4567"|""|""|""|""`,
		`"3"|"Kwame"|"kwame@example.com"|"+233201234567"|""|""|""|""`,
		`"4"|"Jane"|"jane@example.co.uk"|"+44 7911 123456"|""|""|""|""`,
		`"5"|"Nil"|"nil@example.com"|"nil"|""|""|""|""`,
		`"6"|"Short"|"short@example.com"|"12345"|""|""|""|""`,
		`"7"|"No Email"|"N/A"|"+1-202-555-0143"|""|""|""|""`,
		`"8"|"Cut"`,
	)

	res, err := NewPhonePipeline(Options{}).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, PhoneCounts{
		Total:       8,
		Skipped:     1,
		WithEmail:   6,
		Nigerian:    2,
		NonNigerian: 2,
		Invalid:     2,
	}, res.Counts)

	want := []model.PhoneRecord{
		{AccountNo: "3", CustomerName: "Kwame", Email: "kwame@example.com", Phone: "+233201234567", Status: model.PhoneNonNigerian},
		{AccountNo: "4", CustomerName: "Jane", Email: "jane@example.co.uk", Phone: "+44 7911 123456", Status: model.PhoneNonNigerian},
	}
	if diff := cmp.Diff(want, res.NonNigerian); diff != "" {
		t.Errorf("non-nigerian phones mismatch (-want +got):\n%s", diff)
	}
}

func TestPhonePipelineMinimalHeader(t *testing.T) {
	input := exportOf(
		`E_MAIL|MOB_NUM`,
		`a@example.com|+44 7911 123456`,
	)

	res, err := NewPhonePipeline(Options{}).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, res.NonNigerian, 1)
	assert.Empty(t, res.NonNigerian[0].AccountNo)
	assert.Empty(t, res.NonNigerian[0].CustomerName)
	assert.Equal(t, "+44 7911 123456", res.NonNigerian[0].Phone)
}

func TestPhonePipelineMissingColumn(t *testing.T) {
	input := exportOf(`"ACCT_NO"|"E_MAIL"`, `"1"|"a@example.com"`)

	_, err := NewPhonePipeline(Options{}).Run(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, ingest.IsMissingColumn(err))
	assert.Contains(t, err.Error(), model.ColMobile)
}

func TestPhonePipelineCustomDelimiter(t *testing.T) {
	input := exportOf(
		`E_MAIL,MOB_NUM`,
		`a@example.com,09012345678`,
		`b@example.com,+1-202-555-0143`,
	)

	res, err := NewPhonePipeline(Options{Delimiter: ','}).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts.Nigerian)
	assert.Equal(t, 1, res.Counts.NonNigerian)
}

func TestPhonePipelineLimitAndCancel(t *testing.T) {
	input := exportOf(
		`E_MAIL|MOB_NUM`,
		`a@example.com|+44 7911 123456`,
		`b@example.com|+44 7911 123457`,
	)

	res, err := NewPhonePipeline(Options{Limit: 1}).Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts.Total)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewPhonePipeline(Options{}).Run(ctx, strings.NewReader(input))
	require.Error(t, err)
}
