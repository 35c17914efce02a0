package tokenize

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"oumugaeshi/ingest"
	"oumugaeshi/model"
)

func surfaces(tokens []model.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestFromUni(t *testing.T) {
	f := []string{"動詞", "非自立可能", "*", "*", "五段-カ行", "連用形-促音便", "イク", "行く", "行っ", "イッ", "行く", "イク", "和"}
	got := fromUni("行っ", f)
	want := model.Token{
		Text:           "行っ",
		Lemma:          "行く",
		Norm:           "行く",
		POS:            model.POSVerb,
		Tag:            "動詞-非自立可能",
		InflectionType: "五段-カ行",
		InflectionForm: "連用形-促音便",
		Reading:        "イッ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fromUni() mismatch (-want +got):\n%s", diff)
	}

	// unknown words carry only the part of speech
	got = fromUni("ＧＰＵ", []string{"名詞", "普通名詞", "一般", "*", "*", "*"})
	assert.Equal(t, "ＧＰＵ", got.Lemma)
	assert.Equal(t, "GPU", got.Norm)
	assert.Equal(t, model.POSNoun, got.POS)
}

func TestUniversalPOS(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"名詞-固有名詞-地名-一般", model.POSPropn},
		{"名詞-数詞", model.POSNum},
		{"形状詞-一般", model.POSAdj},
		{"形状詞-助動詞語幹", model.POSAux},
		{"名詞-助動詞語幹", model.POSAux},
		{"助詞-接続助詞", model.POSSconj},
		{"助詞-準体助詞", model.POSSconj},
		{"助詞-終助詞", model.POSPart},
		{"助詞-係助詞", model.POSAdp},
		{"補助記号-句点", model.POSPunct},
		{"補助記号-一般", model.POSSym},
		{"空白", model.POSSpace},
		{"接尾辞-名詞的-一般", model.POSNoun},
		{"連体詞", model.POSDet},
		{"不明", model.POSX},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, universalPOS(tt.tag), tt.tag)
	}
}

func TestMarkHelperVerbs(t *testing.T) {
	tokens := []model.Token{
		{Text: "読ん", POS: model.POSVerb, Tag: "動詞-一般"},
		{Text: "で", Norm: "で", POS: model.POSSconj, Tag: "助詞-接続助詞"},
		{Text: "い", Lemma: "いる", POS: model.POSVerb, Tag: "動詞-非自立可能"},
		{Text: "行く", Lemma: "行く", POS: model.POSVerb, Tag: "動詞-非自立可能"},
	}
	markHelperVerbs(tokens)
	assert.Equal(t, model.POSAux, tokens[2].POS)
	assert.Equal(t, model.POSVerb, tokens[3].POS)

	// しまう after て, and the IPA contraction ちゃう with no て at all
	tokens = []model.Token{
		fromUni("行っ", []string{"動詞", "非自立可能", "*", "*", "五段-カ行", "連用形-促音便", "イク", "行く", "行っ", "イッ", "行く"}),
		fromUni("て", []string{"助詞", "接続助詞", "*", "*", "*", "*", "テ", "て", "て", "テ", "て"}),
		fromUni("しまっ", []string{"動詞", "非自立可能", "*", "*", "五段-ワア行", "連用形-促音便", "シマウ", "仕舞う", "しまっ", "シマッ", "しまう"}),
		fromIPA("ちゃう", []string{"動詞", "非自立", "*", "*", "五段・ワ行促音便", "基本形", "ちゃう", "チャウ", "チャウ"}),
	}
	markHelperVerbs(tokens)
	assert.Equal(t, model.POSVerb, tokens[0].POS)
	assert.Equal(t, model.POSAux, tokens[2].POS)
	assert.Equal(t, model.POSAux, tokens[3].POS)
}

func TestFromIPA(t *testing.T) {
	tests := []struct {
		name    string
		surface string
		f       []string
		tag     string
		typ     string
		form    string
	}{
		{"godan", "行き", []string{"動詞", "自立", "*", "*", "五段・カ行促音便", "連用形", "行く", "イキ", "イキ"}, "動詞-一般", "五段-カ行", "連用形-一般"},
		{"wa row", "買っ", []string{"動詞", "自立", "*", "*", "五段・ワ行促音便", "連用タ接続", "買う", "カッ", "カッ"}, "動詞-一般", "五段-ワア行", "連用形-促音便"},
		{"volitional", "行こ", []string{"動詞", "自立", "*", "*", "五段・カ行促音便", "未然ウ接続", "行く", "イコ", "イコ"}, "動詞-一般", "五段-カ行", "意志推量形"},
		{"ichidan", "食べ", []string{"動詞", "自立", "*", "*", "一段", "連用形", "食べる", "タベ", "タベ"}, "動詞-一般", "下一段", "連用形-一般"},
		{"polite", "ませ", []string{"助動詞", "*", "*", "*", "特殊・マス", "未然形", "ます", "マセ", "マセ"}, "助動詞", "助動詞-マス", "未然形-一般"},
		{"negative n", "ん", []string{"助動詞", "*", "*", "*", "不変化型", "基本形", "ん", "ン", "ン"}, "助動詞", "助動詞-ヌ", "終止形-一般"},
		{"conjecture", "だろ", []string{"助動詞", "*", "*", "*", "特殊・ダ", "未然形", "だ", "ダロ", "ダロ"}, "助動詞", "助動詞-ダ", "意志推量形"},
		{"passive", "れ", []string{"動詞", "接尾", "*", "*", "一段", "連用形", "れる", "レ", "レ"}, "助動詞", "助動詞-レル", "連用形-一般"},
		{"likelihood", "らしい", []string{"助動詞", "*", "*", "*", "形容詞・イ段", "基本形", "らしい", "ラシイ", "ラシイ"}, "助動詞", "助動詞-ラシイ", "終止形-一般"},
		{"adjectival noun", "静か", []string{"名詞", "形容動詞語幹", "*", "*", "*", "*", "静か", "シズカ", "シズカ"}, "形状詞-一般", "", ""},
		{"nominaliser", "ん", []string{"名詞", "非自立", "一般", "*", "*", "*", "ん", "ン", "ン"}, "助詞-準体助詞", "", ""},
		{"sou stem", "そう", []string{"名詞", "特殊", "助動詞語幹", "*", "*", "*", "そう", "ソウ", "ソー"}, "形状詞-助動詞語幹", "", ""},
		{"question mark", "？", []string{"記号", "一般", "*", "*", "*", "*", "？", "？", "？"}, "補助記号-一般", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromIPA(tt.surface, tt.f)
			assert.Equal(t, tt.tag, got.Tag)
			assert.Equal(t, tt.typ, got.InflectionType)
			assert.Equal(t, tt.form, got.InflectionForm)
		})
	}

	q := fromIPA("？", []string{"記号", "一般", "*", "*", "*", "*", "？", "？", "？"})
	assert.Equal(t, "?", q.Norm)
	assert.Equal(t, model.POSSym, q.POS)
}

func TestResolveSou(t *testing.T) {
	sou := []string{"名詞", "特殊", "助動詞語幹", "*", "*", "*", "そう", "ソウ", "ソー"}
	ta := []string{"助動詞", "*", "*", "*", "特殊・タ", "基本形", "た", "タ", "タ"}
	tests := []struct {
		name string
		raw  [][]string
		text []string
		tag  string
		typ  string
	}{
		{
			"hearsay after conclusive",
			[][]string{{"動詞", "自立", "*", "*", "五段・ラ行", "基本形", "降る", "フル", "フル"}, sou},
			[]string{"降る", "そう"}, "名詞-助動詞語幹", "",
		},
		{
			"appearance after continuative",
			[][]string{{"動詞", "自立", "*", "*", "五段・ラ行", "連用形", "降る", "フリ", "フリ"}, sou},
			[]string{"降り", "そう"}, "形状詞-助動詞語幹", "",
		},
		{
			"past hearsay",
			[][]string{{"動詞", "自立", "*", "*", "五段・ラ行", "連用タ接続", "降る", "フッ", "フッ"}, ta, sou},
			[]string{"降っ", "た", "そう"}, "名詞-助動詞語幹", "助動詞-タ",
		},
		{
			"desiderative stem",
			[][]string{{"動詞", "自立", "*", "*", "五段・カ行促音便", "連用形", "行く", "イキ", "イキ"}, ta, sou},
			[]string{"行き", "た", "そう"}, "形状詞-助動詞語幹", "助動詞-タイ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []model.Token
			for i, f := range tt.raw {
				tokens = append(tokens, fromIPA(tt.text[i], f))
			}
			resolveSou(tokens, tt.raw)
			last := tokens[len(tokens)-1]
			assert.Equal(t, tt.tag, last.Tag)
			assert.Equal(t, model.POSAux, last.POS)
			if tt.typ != "" {
				assert.Equal(t, tt.typ, tokens[1].InflectionType)
			}
		})
	}
}

func TestPromoteFinalParticles(t *testing.T) {
	raw := [][]string{
		{"動詞", "自立"},
		{"助詞", "副助詞／並立助詞／終助詞"},
		{"記号", "句点"},
	}
	tokens := []model.Token{fromIPA("行く", raw[0]), fromIPA("か", raw[1]), fromIPA("。", raw[2])}
	assert.Equal(t, "助詞-副助詞", tokens[1].Tag)
	promoteFinalParticles(tokens, raw)
	assert.Equal(t, "助詞-終助詞", tokens[1].Tag)
	assert.Equal(t, model.POSPart, tokens[1].POS)
}

func TestSplitSentences(t *testing.T) {
	text := "行く。学生です！\n"
	tokens := []model.Token{
		{Text: "行く", POS: model.POSVerb, Start: 0, End: 2},
		{Text: "。", POS: model.POSPunct, Tag: "補助記号-句点", Start: 2, End: 3},
		{Text: "学生", POS: model.POSNoun, Start: 3, End: 5},
		{Text: "です", POS: model.POSAux, Start: 5, End: 7},
		{Text: "！", POS: model.POSPunct, Tag: "補助記号-句点", Start: 7, End: 8},
		{Text: "\n", POS: model.POSSpace, Tag: "空白", Start: 8, End: 9},
	}
	var cuts [][2]int
	got := splitSentences(text, tokens, func(s, e int) { cuts = append(cuts, [2]int{s, e}) })
	require.Len(t, got, 2)
	assert.Equal(t, "行く。", got[0].Text)
	assert.Equal(t, "学生です！", got[1].Text)
	assert.Equal(t, []string{"学生", "です", "！"}, surfaces(got[1].Tokens))
	assert.Equal(t, 0, got[1].Tokens[0].Index)
	assert.Equal(t, 3, got[1].Tokens[0].Start)
	assert.Equal(t, 0, got[1].Root)
	assert.Equal(t, [][2]int{{0, 2}, {2, 5}}, cuts)
}

func TestAnalyzeWithKagome(t *testing.T) {
	if testing.Short() {
		t.Skip("loads a full dictionary")
	}
	for _, dict := range []string{DictUni, DictIPA} {
		t.Run(dict, func(t *testing.T) {
			a, err := New(dict, "normal", nil)
			require.NoError(t, err)

			doc, err := a.Analyze(context.Background(), "今日は旅行へ行く")
			require.NoError(t, err)
			require.Len(t, doc.Sentences, 1)
			s := doc.Sentences[0]
			assert.Equal(t, []string{"今日", "は", "旅行", "へ", "行く"}, surfaces(s.Tokens))
			root, ok := s.RootToken()
			require.True(t, ok)
			assert.Equal(t, "行く", root.Text)
			assert.Equal(t, model.POSVerb, root.POS)
			assert.Equal(t, "五段-カ行", root.InflectionType)
		})
	}
}

func TestNewRejectsUnknown(t *testing.T) {
	_, err := New("neologd", "normal", nil)
	assert.Error(t, err)
}

func TestStart(t *testing.T) {
	if testing.Short() {
		t.Skip("loads a full dictionary")
	}
	defer goleak.VerifyNone(t)
	a, err := New(DictUni, "normal", nil)
	require.NoError(t, err)

	in := make(chan ingest.Utterance, 2)
	u, err := ingest.New("行きます")
	require.NoError(t, err)
	in <- u
	close(in)

	var got []Analyzed
	for r := range Start(context.Background(), a, in) {
		got = append(got, r)
	}
	require.Len(t, got, 1)
	assert.Equal(t, u.ID, got[0].Utterance.ID)
	require.NoError(t, got[0].Err)
	require.Len(t, got[0].Doc.Sentences, 1)
}

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("loads a full dictionary")
	}
	a, err := New(DictUni, "", nil)
	require.NoError(t, err)

	texts := []string{"学生です", "行きます", "今日は旅行へ行く"}
	docs, err := a.AnalyzeAll(context.Background(), texts, 2)
	require.NoError(t, err)
	require.Len(t, docs, len(texts))
	for i, d := range docs {
		assert.Equal(t, texts[i], d.Text)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = a.AnalyzeAll(ctx, texts, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizeStream(t *testing.T) {
	if testing.Short() {
		t.Skip("loads a full dictionary")
	}
	defer goleak.VerifyNone(t)
	a, err := New(DictUni, "normal", nil)
	require.NoError(t, err)

	out, errs := a.TokenizeStream(context.Background(), "学生です")
	var got []model.Token
	for tk := range out {
		got = append(got, tk)
	}
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"学生", "です"}, surfaces(got))
}
