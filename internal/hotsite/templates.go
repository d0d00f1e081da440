package hotsite

// pageTemplate is the html/template skeleton of index.html. Section ids are
// shared with style.css and script.js and must not change.
const pageTemplate = `<!DOCTYPE html>
<html lang="pt-br" data-project="{{.Slug}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <meta name="theme-color" content="{{.BrandColor}}">
  <link rel="stylesheet" href="css/style.css">
  <link href="https://fonts.googleapis.com/css2?family=Poppins:wght@400;500;600;700&display=swap" rel="stylesheet">
  <link rel="icon" type="image/png" href="images/{{.Favicon}}">
  <link rel="apple-touch-icon" href="images/{{.Webclip}}">
  <meta property="og:title" content="{{.Title}}">
  <meta property="og:description" content="{{.Description}}">
  <meta property="og:image" content="{{.SocialImage}}">
  <meta property="og:type" content="website">
</head>
<body>
  <div id="top"></div>
  <header class="site-header container">
    <div class="brand">
      <img src="{{.LogoPath}}" alt="{{.Name}}" class="brand-logo">
      <span class="brand-name">{{.Name}}</span>
    </div>
    <nav class="nav">
      <a href="#section-local">Sobre o Local</a>
      <a href="#section-galeria">Galeria</a>
      <a href="#section-plantas">Plantas</a>
      <a href="#tours">Tour 360</a>
      <a href="#section-ficha-tecnica">Ficha Técnica</a>
      <a href="#section-price">Preços</a>
      <a href="#section-faq">FAQ</a>
    </nav>
  </header>

  <section class="hero hero-cover" style="background-image: url('{{.HeroImagePath}}');">
    <div class="hero-overlay"></div>
    <div class="container hero-grid">
      <div class="hero-copy">
        <h1 class="title">{{.HeroHeadline}}</h1>
        <p class="subtitle">{{.HeroSubheadline}}</p>
        <ul class="badges">
          <li><img width="20" src="images/icon-chave.svg" class="img-icon-entrega"> Entrega prevista: <strong>{{.DeliveryDate}}</strong></li>
          <li><img width="20" src="images/icon-calendario.svg" class="img-icon-entrega"> Lançamento: <strong>{{.LaunchDate}}</strong></li>
          <li><img width="20" src="images/icon-regua.svg" class="img-icon-entrega"> Metragens: <strong>{{.FootageRange}}</strong></li>
          <li><img width="20" src="images/icon-cama.svg" class="img-icon-entrega"> Tipologias: <strong>{{.TypologiesText}}</strong></li>
        </ul>
        <a class="btn cta" href="{{.CTALink}}">Ver Tours 360</a>
      </div>
    </div>
  </section>

  <section id="section-local" class="section-local">
    <div class="container w-container">
      <div class="div-local">
        <div class="div-txt-local">
          <h2 class="h2">Conheça mais sobre a localização</h2>
          <h3 class="h4">{{.LocationDesc}}</h3>
{{- range .Points}}
          <div class="div-icon-txt-local">
            <img alt="" src="images/icon-check.svg" loading="lazy" class="img-icon-local">
            <h4 class="h4-local">{{.}}</h4>
          </div>
{{- end}}
        </div>
        <div class="div-maps">
          <aside class="aside">
            <div class="map-embed">
              <iframe title="Mapa" loading="lazy" src="{{.MapEmbedSrc}}"></iframe>
            </div>
          </aside>
        </div>
      </div>
    </div>
  </section>

  <section id="section-galeria" class="section-galeria">
    <div class="container w-container">
      <div class="div-galeria">
        <h2 class="h2">Imagens do {{.Name}}</h2>
        <div class="div-galeria-imgs">
          <img width="30" class="gallery-arrow-left" src="images/icon-seta-esquerda.png">
          <img width="30" class="gallery-arrow-right" src="images/icon-seta-direita.png">
          <div class="galeria">
            <div class="main-gallery-container">
              <div class="horizontal-scroll-container">
                <div class="image-gallery-container">
                  <div class="image-row image-row-1">
{{- range .GalleryRow1}}
                    <img loading="lazy" src="{{.}}" alt="Galeria" class="gallery-image">
{{- end}}
                  </div>
                  <div class="image-row image-row-2">
{{- range .GalleryRow2}}
                    <img loading="lazy" src="{{.}}" alt="Galeria" class="gallery-image">
{{- end}}
                  </div>
                </div>
              </div>
            </div>
            <div id="image-modal" class="image-modal">
              <span class="close-modal">×</span>
              <img class="modal-image-content" id="modal-image">
              <img src="images/icon-seta-esquerda.png" class="modal-arrow modal-arrow-left">
              <img src="images/icon-seta-direita.png" class="modal-arrow modal-arrow-right">
            </div>
          </div>
        </div>
      </div>
    </div>
  </section>

  <section id="section-plantas" class="section section-plantas">
    <div class="container grid-2 plantas-grid">
      <div class="plantas-left">
        <h2 class="h2">Plantas — Studio</h2>
        <div class="tabs style-tabs">
{{- range .StyleTabs}}
          <button class="btn{{if .Active}} is-active{{end}}" data-plant="{{.Key}}">{{.Label}}</button>
{{- end}}
        </div>
        <div class="tabs package-tabs">
{{- range .PackageTabs}}
          <button class="btn pkg{{if .Active}} is-active{{end}}" data-package="{{.Key}}">{{.Title}}</button>
{{- end}}
        </div>
        <div class="planta-imagem-wrap">
          <img id="planta-img" src="" alt="Planta">
        </div>
      </div>
      <div class="planta-card">
        <h3 class="h3" id="planta-nome">Selecione uma planta</h3>
        <p class="planta-disponibilidade"><span>🔥</span> Unidades disponíveis</p>
        <button class="btn ghost btn-agendar" onclick="window.open('{{.WhatsAppLink}}', '_blank')">📅 Agende sua visita</button>
        <h4 class="h4">Características</h4>
        <p id="planta-desc" class="planta-desc"></p>
      </div>
    </div>
  </section>

  <section id="tours" class="container section">
    <h2 class="h2">Tour 360 por estilo</h2>
    <div class="tabs">
{{- range .TourTabs}}
      <button class="tab{{if .Active}} is-active{{end}}" data-tab="{{.Key}}">{{.Label}}</button>
{{- end}}
    </div>
    <div class="tab-panels">
{{- range .TourPanels}}
      <div class="tab-panel{{if .Active}} is-active{{end}}" id="panel-{{.Key}}">
        <h3 class="h3">{{.Label}}</h3>
        <div class="tour-selector">
{{- range .Buttons}}
          <button class="btn{{if .Active}} is-active{{end}}" data-iframe="{{.IframeURL}}">{{.Label}}</button>
{{- end}}
        </div>
        <div class="iframe-wrap">
          <iframe src="{{.FirstURL}}" allowfullscreen loading="lazy" title="Tour {{.Label}}"></iframe>
        </div>
      </div>
{{- end}}
    </div>
  </section>

  <section id="section-ficha-tecnica" class="section-ficha-tecnica">
    <div class="container w-container">
      <div class="div-ficha-tecnica">
        <div class="div-txt-ficha">
          <h2 class="h2">Ficha técnica do empreendimento</h2>
          <div class="div-detalhes">
{{- range .Specs}}
            <div class="div-detalhe">
              <div class="div-icon-txt">
                <img alt="" src="images/icon-check.svg" loading="lazy" class="img-icon-check">
                <h4 class="h4-infos">{{.Label}}</h4>
              </div>
              <h5 class="h5-infos">{{.Value}}</h5>
            </div>
{{- end}}
          </div>
        </div>
        <div class="div-img-ficha">
          <img width="291" class="img-ficha-tecnica" src="images/ficha-img.png">
        </div>
      </div>
    </div>
  </section>

  <section id="section-price" class="section-price">
    <div class="container w-container">
      <h2 class="h2 h2-preco">Invista em um studio mobiliado</h2>
      <div class="div-tabelas">
{{- range .Prices}}
        <div id="price-{{.Number}}" class="{{if .Highlight}}price-4{{end}}">
          <div class="div-txt-h6-price">
            <h6 class="h6-price">{{.Badge}}</h6>
          </div>
          <h5 class="h5-price">{{.Title}}</h5>
          <h5 class="h5-a-partir">a partir de</h5>
          <h3 class="h3-price">{{.Value}}</h3>
          <div class="div-caract-price">
{{- range .Features}}
            <div class="div-icon-txt-price">
              <img alt="" src="images/icon-check.svg" loading="lazy" class="img-icon-check check-price">
              <h4 class="h4-price">{{.}}</h4>
            </div>
{{- end}}
          </div>
          <a href="{{.CTALink}}" target="_blank" class="bt-price">
            <span class="txt-bt-agenda">Agende sua visita</span>
            <img alt="" src="images/icon-seta.svg" class="img-icon-seta">
          </a>
        </div>
{{- end}}
      </div>
    </div>
  </section>

  <section id="section-faq" class="section-faq">
    <div class="container w-container">
      <div class="div-faq">
        <h2 class="h2">Dúvidas frequentes</h2>
{{- range .Faqs}}
        <button class="custom-accordion">{{.Question}}</button>
        <div class="custom-panel">
          {{.Answer}}
        </div>
{{- end}}
      </div>
    </div>
  </section>

  <section id="footer" class="footer">
    <div class="container w-container">
      <div class="div-footer">
        <div class="div-logo">
          <img width="116" src="{{.LogoPath}}" class="logo">
        </div>
        <div class="div-fale-com-vendas">
          <h3 class="h5 h5-footer">Fale com o time de vendas!</h3>
          <div class="div-icon-txt icon-txt-footer">
            <img width="15" src="images/icon-whats.svg" class="img-icon-whats">
            <h4 class="h4 h4-footer">{{.Phone}}</h4>
          </div>
        </div>
        <div class="div-txt-h5">
          <h5 class="h5 h5-footer">{{.AddressFull}}</h5>
        </div>
      </div>
      <div class="div-copyright">
        <h3 class="h5 h5-copyright">Copyright © {{.Year}} {{.Name}} | All Rights Reserved</h3>
      </div>
    </div>
    <a id="button-topo" href="#top" class="button bt-back-top w-button"> </a>
  </section>

  <div class="back-to-top">
    <a href="#top" class="bt-back-top"></a>
  </div>

  <script src="js/script.js" defer></script>
</body>
</html>
`
