package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMalformed(t *testing.T) {
	doc, err := Parse(`<div class="a"><span>one<p>two</div></table>`)
	require.NoError(t, err)
	require.Equal(t, "onetwo", Text(doc.Find("div.a")))
	require.Equal(t, 0, doc.Find(".missing").Length())
	require.Equal(t, "", Text(doc.Find(".missing")))
}

func TestFirstAttr(t *testing.T) {
	doc := MustParse(`<img class="x" src="/small.jpg" data-src=""><img class="y" data-src="/big.jpg" src="/small.jpg">`)
	require.Equal(t, "/small.jpg", FirstAttr(doc.Find("img.x"), "data-src", "src"))
	require.Equal(t, "/big.jpg", FirstAttr(doc.Find("img.y"), "data-src", "src"))
	require.Equal(t, "", FirstAttr(doc.Find("img.z"), "data-src", "src"))
}

func TestCleanTextAndExists(t *testing.T) {
	doc := MustParse("<div id=r><b>  Free \n\n  delivery  </b><i class=ok></i></div>")
	require.Equal(t, "Free delivery", CleanText(doc.Find("#r b")))
	require.True(t, Exists(doc.Find("#r"), "i.ok"))
	require.False(t, Exists(doc.Find("#r"), "i.nope"))
}
