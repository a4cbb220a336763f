// Package prompt holds the fixed instruction templates sent to Gemini.
// This is data, not logic: both templates demand product identification,
// mandatory web research with at least three comparable products, and a
// JSON-only reply with exactly the keys title, description, search_info.
package prompt

import (
	"strings"

	"github.com/lithammer/dedent"
)

// Variant selects which template a deployment uses.
type Variant string

const (
	// VariantStructured is the rich template with explicit workflow,
	// rules and output schema markup. Used by the gRPC deployment.
	VariantStructured Variant = "structured"
	// VariantPlain is the simpler plain-language template. Used by the
	// HTTP deployment.
	VariantPlain Variant = "plain"
)

const structuredTemplate = `
	<prompt>
	  <role>Bir e-ticaret içerik uzmanı ve pazar araştırmacısı olarak çalışıyorsun. Amacın, görseldeki ürünü analiz ederek SEO uyumlu, profesyonel ve satışa yönelik bir ürün tanıtımı hazırlamak.</role>

	  <workflow>
	    <step index="1">Görseli incele ve ürünü doğru şekilde tanımla (model/seri, malzeme, renk, form, ayırt edici detaylar).</step>
	    <step index="2">Zorunlu web araması yap: güncel pazar bilgilerini topla (fiyat aralıkları, rakip/benzer ürünler, teknik özellikler, trendler, talep/yorum içgörüleri).</step>
	    <step index="3">En az 3 benzer ürünü fiyat aralığı ve öne çıkan özelliklerle özetle; mümkünse bölge/para birimini belirt.</step>
	    <step index="4">Toplanan verileri kullanarak yalnızca belirtilen JSON formatında yanıt ver.</step>
	  </workflow>

	  <web_search required="true">
	    <must_include>Fiyat aralıkları; benzer ürünlerin marka/modeli; temel özellikler; en az 3 kaynak URL.</must_include>
	    <freshness>Güncel bilgiye öncelik ver (son 12 ay).</freshness>
	    <disclaimer>Varsayım yapma; belirsizse "bilgi yetersiz" de.</disclaimer>
	  </web_search>

	  <output>
	    <format>JSON</format>
	    <constraints>
	      <title max_chars="60"/>
	      <description word_count_min="150" word_count_max="300"/>
	      <language>Turkish</language>
	      <return_only_json>true</return_only_json>
	    </constraints>
	    <json_template><![CDATA[
	{
	  "title": "SEO uyumlu ürün başlığı (en fazla 60 karakter)",
	  "description": "150-300 kelime: görsel özellikler, kullanım alanları, hedef kitle ve pazardan güncel bulgularla desteklenen, profesyonel ve ikna edici açıklama. Doğal SEO anahtar kelimeleri kullan.",
	  "search_info": "Web aramasından elde edilen özet bulgular + kısa kaynak listesi (URL'lerle)."
	}
	    ]]></json_template>
	  </output>

	  <style>
	    <tone>Profesyonel, ikna edici, satış odaklı</tone>
	    <seo>Doğal anahtar kelimeler; başlıkta birincil anahtar kelime; açıklamada semantik varyasyonlar</seo>
	  </style>

	  <rules>
	    <rule>Görselden gözlemlenebilir özellikleri (malzeme, tasarım, renk, boyut izlenimi) açıkça belirt.</rule>
	    <rule>Web aramasından öğrendiğin güncel bilgileri açıklamaya entegre et.</rule>
	    <rule>Kullanım alanlarını ve hedef kitleyi netleştir.</rule>
	    <rule>Genellemeden kaçın; veriye dayalı yaz.</rule>
	    <rule>Çıktıyı yalnızca belirtilen JSON formatında üret; JSON dışına çıkma.</rule>
	  </rules>
	</prompt>`

const plainTemplate = `
	Bu görseldeki ürünü analiz et ve şu adımları takip et:

	1. Önce görseldeki ürünü tanımla
	2. Bu ürün hakkında güncel pazar bilgilerini aramak için web araması yap
	3. Benzer ürünlerin fiyat aralıklarını ve özelliklerini araştır (en az 3 benzer ürün)
	4. Elde ettiğin bilgileri kullanarak aşağıdaki JSON formatında yanıt ver:

	{
	    "title": "SEO uyumlu ürün başlığı (max 60 karakter)",
	    "description": "Detaylı ürün açıklaması (150-300 kelime)",
	    "search_info": "Web aramasından elde edilen bilgiler"
	}

	Açıklama yazarken:
	- Ürünün görsel özelliklerini detaylandır
	- Web aramasından öğrendiğin güncel bilgileri kullan
	- Kullanım alanlarını ve hedef kitleyi belirt
	- SEO dostu anahtar kelimeler kullan
	- Profesyonel ve satışa yönelik bir dil kullan

	ÖNEMLİ: Mutlaka web araması yap ve bu bilgileri yanıtında kullan. Yanıt olarak YALNIZCA JSON objesi döndür.`

// Build returns the template for the given variant. Unknown variants
// fall back to the plain template.
func Build(v Variant) string {
	switch v {
	case VariantStructured:
		return strings.TrimSpace(dedent.Dedent(structuredTemplate))
	default:
		return strings.TrimSpace(dedent.Dedent(plainTemplate))
	}
}
