package hotsite

import "strings"

const brandPlaceholder = "{{brand}}"

// RenderCSS returns the stylesheet with the brand color substituted into the
// --brand custom property. The color is used verbatim.
func RenderCSS(brandColor string) string {
	return strings.Replace(stylesheet, brandPlaceholder, brandColor, 1)
}

const stylesheet = `/* Walk'a hotsite */

:root {
  --bg: #f4f4f4;
  --text: #1d242b;
  --muted: #65707a;
  --brand: {{brand}};
  --brand-2: #152328;
  --container: min(1160px, 92vw);
  --border: 1px solid rgba(13, 18, 23, .08);
  --gap: 20px;
  --radius: 8px;
  --shadow: 0 2px 4px rgba(0,0,0,0.05);
  --surface: #ffffff;
  --padrão: 'Poppins', sans-serif;
  --azul: #152328;
  --cinza-1: #f4f4f4;
  --branco-lofteria: #ffffff;
}

* { box-sizing: border-box; }
html, body { height: 100%; }
body { margin: 0; background: var(--bg); color: var(--text); font: 400 16px/1.6 'Poppins', sans-serif, ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, "Noto Sans"; }
img { max-width: 100%; height: auto; display: block; }
a { color: inherit; text-decoration: none; }
.container { width: var(--container); margin-inline: auto; padding-inline: var(--gap); }
.section { padding: 60px 0; }
.grid-2 { display: grid; grid-template-columns: 1.1fr .9fr; gap: var(--gap); }
.cards { display: grid; gap: var(--gap); }
.cards-4 { grid-template-columns: repeat(4, 1fr); }
.cards-3 { grid-template-columns: repeat(3, 1fr); }
.card { background: var(--surface); border: var(--border); border-radius: var(--radius); padding: clamp(14px, 2.5vw, 24px); box-shadow: var(--shadow); }
.link-card { color: var(--text); text-decoration: none; }
.link-card:hover { outline: 2px solid var(--brand); }
.site-header { display: flex; align-items: center; justify-content: space-between; padding: 16px 0; }
.brand { display: flex; align-items: center; gap: 12px; }
.brand.small .brand-logo { width: 24px; }
.brand-logo { width: 36px; height: auto; }
.brand-name { color: var(--brand-2); font-weight: 700; }
.nav { display: flex; flex-wrap: wrap; gap: 12px; }
.nav a { color: var(--muted); text-decoration: none; padding: 8px 12px; border-radius: 999px; }
.nav a:hover { background: rgba(21, 35, 40, .06); color: var(--brand-2); }
.hero.hero-cover { position: relative; display: flex; align-items: center; min-height: clamp(320px, 48vw, 560px); background-position: center; background-size: cover; background-repeat: no-repeat; background-attachment: fixed; border-bottom: var(--border); }
.hero-overlay { position: absolute; inset: 0; background-color: rgba(26, 25, 25, 0.85); }
.hero-grid { position: relative; z-index: 1; display: grid; grid-template-columns: 1.1fr .9fr; gap: var(--gap); align-items: center; }
.title { color: #fafafa; font-size: clamp(28px, 5vw, 48px); margin: 0 0 8px; }
.subtitle { color: #9199a2; margin: 0 0 16px; }
.badges { list-style: none; padding: 0; margin: 0 0 16px; display: flex; flex-wrap: wrap; gap: 10px; }
.badges li { background: #fff; border: var(--border); border-radius: 999px; padding: 8px 12px; font-size: .95rem; box-shadow: var(--shadow); display: flex; align-items: center; gap: 8px; }
.img-icon-entrega { width: 20px; height: auto; }
.h2 { color: var(--brand-2); font-size: clamp(22px, 3.6vw, 34px); margin: 0 0 12px; font-weight: 600; }
.h3 { color: var(--brand-2); font-size: clamp(18px, 2.3vw, 22px); margin: 0 0 8px; font-weight: 600; }
.h4 { color: var(--brand-2); font-size: 16px; font-weight: 400; line-height: 1.6; margin: 0; }
.h5 { color: var(--muted); font-size: 14px; font-weight: 400; margin: 0; }
.list { padding-left: 18px; }
.kpi h3 { color: var(--muted); font-size: 1rem; margin: 0 0 6px; }
.kpi p { font-size: 1.15rem; margin: 0; }

/* buttons */
.btn { appearance: none; background: #fff; color: var(--brand-2); border: 1px solid rgba(21, 35, 40, .12); border-radius: 999px; padding: 10px 16px; font-weight: 700; cursor: pointer; box-shadow: var(--shadow); text-decoration: none !important; transition: transform .06s ease, box-shadow .2s ease, background .2s ease; display: inline-flex; align-items: center; justify-content: center; gap: 8px; font-size: 1rem; }
.btn.cta { background: var(--brand); color: #ffffff !important; border-color: transparent; }
.btn.ghost { background: #fff; border: 1px solid rgba(21, 35, 40, .18); color: var(--brand-2); }
.btn:hover { transform: translateY(-1px); box-shadow: 0 12px 22px rgba(15, 23, 42, .12); }
.btn.is-active { background: var(--brand); color: #ffffff !important; border-color: transparent; }
.btn.pkg { font-size: 0.9rem; padding: 8px 14px; }
.btn.pkg:hover { background: rgba(244, 123, 107, .12); }

.tabs { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 12px; }
.tab { background: #fff; color: var(--brand-2); border: 1px solid rgba(21, 35, 40, .18); border-radius: 999px; padding: 8px 12px; cursor: pointer; box-shadow: var(--shadow); font-size: 1rem; font-weight: 500; }
.tab.is-active { background: var(--brand); color: #ffffff !important; border-color: transparent; }
.tab-panels > .tab-panel { display: none; }
.tab-panels > .tab-panel.is-active { display: block; }
.tour-selector { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 12px; }
.iframe-wrap { position: relative; overflow: hidden; background: #0e1215; border-radius: var(--radius); box-shadow: var(--shadow); }
.iframe-wrap::before { content: ""; display: block; padding-top: 56.25%; }
.iframe-wrap iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; }
.section-galeria { background: #fff; padding: 60px 0; }
.container-galeria { width: var(--container); margin-inline: auto; }
.div-galeria-imgs { position: relative; }
.gallery-arrow-left, .gallery-arrow-right { position: absolute; top: 50%; transform: translateY(-50%); width: 48px; height: 48px; cursor: pointer; z-index: 10; transition: opacity 0.3s ease, transform 0.2s ease; }
.gallery-arrow-left { left: -70px; }
.gallery-arrow-right { right: -70px; }
.image-view { display: none; }
.main-gallery-container { width: 100%; overflow: hidden; position: relative; }
.horizontal-scroll-container { overflow-x: auto; overflow-y: hidden; scroll-behavior: smooth; scrollbar-width: none; -ms-overflow-style: none; }
.horizontal-scroll-container::-webkit-scrollbar { display: none; }
.image-gallery-container { display: flex; flex-direction: column; gap: 16px; width: max-content; }
.image-row { display: flex; gap: 16px; }
.gallery-image { width: 280px; height: 180px; object-fit: cover; border-radius: 12px; cursor: pointer; transition: transform 0.3s ease; }
.gallery-image:hover { transform: scale(1.04); }
.image-modal { display: none; position: fixed; inset: 0; z-index: 1000; background-color: rgba(0, 0, 0, 0.9); align-items: center; justify-content: center; }
.image-modal.active { display: flex; }
.modal-image-content { max-width: 90%; max-height: 85%; border-radius: 8px; box-shadow: 0 4px 20px rgba(0, 0, 0, 0.3); }
.close-modal { position: absolute; top: 25px; right: 40px; color: #fff; font-size: 40px; font-weight: 300; cursor: pointer; z-index: 1100; }
.modal-arrow { position: absolute; top: 50%; transform: translateY(-50%); width: 48px; height: 48px; cursor: pointer; opacity: 0.9; z-index: 1100; }
.modal-arrow-left { left: 60px; }
.modal-arrow-right { right: 60px; }
.modal-arrow:hover { opacity: 1; }
.section-ficha-tecnica { background: var(--cinza-1); padding: 60px 0; }
.div-ficha-tecnica { display: flex; justify-content: space-between; align-items: center; gap: 40px; max-width: 1160px; margin-inline: auto; padding-inline: 20px; }
.div-txt-ficha { display: flex; flex-direction: column; gap: 24px; width: 60%; }
.h2-ficha { font-family: var(--padrão); font-weight: 600; font-size: clamp(22px, 3.6vw, 34px); color: var(--azul); margin: 0; padding: 0; line-height: 1.2; }
.div-txt-h2-ficha { padding: 0; margin: 0 0 16px 0; }
.h4-infos, .h5-infos { margin: 0; line-height: 1.4; }
.div-detalhes { display: flex; flex-direction: column; gap: 18px; }
.div-detalhe { display: flex; justify-content: space-between; align-items: center; border-bottom: 1px solid #dcdcdc; padding-bottom: 12px; }
.div-detalhe:last-child { border-bottom: none; }
.div-icon-txt { display: flex; align-items: center; gap: 10px; }
.img-icon-check { width: 22px; height: 22px; background-color: var(--branco-lofteria); border-radius: 50%; padding: 4px; flex-shrink: 0; }
.h4-infos { font-family: var(--padrão); font-size: 1rem; color: var(--azul); font-weight: 600; }
.h5-infos { font-family: var(--padrão); font-size: 1rem; color: var(--muted); font-weight: 400; text-align: right; }
.div-img-ficha { display: flex; justify-content: center; align-items: center; width: 35%; }
.img-ficha-tecnica { width: 100%; max-width: 291px; height: auto; object-fit: cover; border-radius: 12px; box-shadow: 0 4px 12px rgba(0, 0, 0, 0.08); }
.img-icon-check.check-price { background-color: var(--azul); align-self: center; }
.section-price { background: var(--brand-2); padding: 60px 0; color: #fff; }
.section-price .container { max-width: 1160px; margin-inline: auto; padding-inline: 20px; }
.section-price h2.h2-preco { color: var(--bg); font-weight: 700; text-align: center; margin-bottom: 48px; }
.div-tabelas { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 20px; }
#price-1, #price-2, #price-3, .price-4 { background: var(--bg); color: var(--text); border-radius: 14px; padding: 28px 20px; box-shadow: 0 4px 20px rgba(0, 0, 0, .08); display: flex; flex-direction: column; align-items: center; justify-content: space-between; transition: transform .2s ease, box-shadow .3s ease; }
#price-3 { background: #fff; }
#price-1:hover, #price-2:hover, #price-3:hover, .price-4:hover { transform: translateY(-4px); box-shadow: 0 8px 28px rgba(0, 0, 0, .12); }
.div-txt-h6-price { border-radius: 999px; padding: 4px 14px; margin-bottom: 12px; font-size: 13px; color: #fff; text-transform: lowercase; font-weight: 500; display: inline-block; }
.h6-price { color: inherit; font-size: inherit; font-weight: inherit; margin: 0; }
#price-1 .div-txt-h6-price { background: var(--muted); }
#price-2 .div-txt-h6-price { background: var(--muted); }
#price-3 .div-txt-h6-price { background: var(--brand); }
.price-4 .div-txt-h6-price { background: var(--brand-2); }
.h5-price { color: var(--brand-2); font-size: 1.1rem; font-weight: 700; text-align: center; margin-bottom: 8px; }
.h5-a-partir { color: var(--muted); font-size: 0.9rem; font-weight: 500; text-align: center; margin-bottom: 2px; }
.h3-price { color: var(--brand-2); font-size: 1.8rem; font-weight: 700; text-align: center; margin-bottom: 24px; }
.div-caract-price { display: flex; flex-direction: column; gap: 12px; margin-bottom: 24px; width: 100%; align-items: flex-start; }
.div-icon-txt-price { display: flex; align-items: center; gap: 10px; }
.div-icon-txt-price .img-icon-check { width: 16px; height: 16px; flex-shrink: 0; background-color: var(--brand); border-radius: 50%; padding: 3px; }
.h4-price { color: var(--muted); font-size: 0.95rem; font-weight: 400; line-height: 1.5; margin: 0; }
.bt-price { background: var(--brand); color: #ffffff !important; font-weight: 700; border-radius: 999px; padding: 12px 24px; text-decoration: none; display: inline-flex; align-items: center; justify-content: center; gap: 8px; transition: background .3s ease, transform .2s ease; width: 100%; margin-top: auto; }
.bt-price:hover { background: #f78e7e; transform: translateY(-2px); }
.txt-bt-agenda { color: inherit; font-weight: inherit; text-decoration: none; }
.img-icon-seta { width: 16px; transition: transform .2s ease; }
.bt-price:hover .img-icon-seta { transform: translateX(3px); }
.section-faq { background: var(--cinza-1); padding: 60px 0; }
.div-faq { max-width: 1160px; margin-inline: auto; padding-inline: 20px; display: flex; flex-direction: column; gap: 24px; }
.section-faq .h2 { font-family: var(--padrão); font-weight: 600; font-size: clamp(22px, 3.6vw, 34px); color: var(--azul); margin: 0; text-align: center; margin-bottom: 16px; }
.custom-accordion { position: relative; background-color: #D9D9D9; color: #152328; cursor: pointer; padding: 18px 45px 18px 25px; width: 100%; text-align: left; border: none; border-radius: 999px; outline: none; font-size: 1.1rem; font-family: var(--padrão); font-weight: 500; transition: background-color 0.3s ease; margin-bottom: 12px; }
.custom-accordion:hover, .custom-accordion.active { background-color: #ececec; }
.custom-panel { padding: 10px 25px 20px 25px; max-height: 0; overflow: hidden; font-size: 1rem; color: var(--muted); font-family: var(--padrão); line-height: 1.7; transition: max-height 0.3s ease-out, padding 0.3s ease-out; }
.custom-panel p { margin: 0; }
.custom-accordion::after { content: '+'; font-size: 1.5rem; color: var(--muted); position: absolute; top: 50%; right: 25px; transform: translateY(-50%); font-weight: 300; transition: transform 0.3s ease; }
.custom-accordion.active::after { content: "–"; transform: translateY(-50%) rotate(180deg); }
.footer { background: var(--cinza-1); padding: 60px 0 30px 0; color: var(--azul); }
.div-footer { max-width: 1160px; margin-inline: auto; padding-inline: 20px; display: flex; justify-content: space-between; align-items: flex-start; gap: 40px; flex-wrap: wrap; margin-bottom: 30px; }
.div-logo img.logo { width: 120px; height: auto; display: block; }
.div-fale-com-vendas { display: flex; flex-direction: column; align-items: flex-start; gap: 10px; }
.h5-footer { font-family: var(--padrão); font-weight: 500; color: var(--muted); font-size: 0.95rem; margin: 0; line-height: 1.5; }
.h5-footer.h5 { font-weight: 600; color: var(--azul); }
.icon-txt-footer { display: flex; align-items: center; gap: 8px; }
.img-icon-whats { width: 18px; height: 18px; }
.h4-footer { font-family: var(--padrão); font-weight: 500; color: var(--azul); font-size: 1rem; margin: 0; }
.div-copyright { margin-top: 30px; border-top: 1px solid #e0e0e0; padding-top: 20px; text-align: center; }
.h5-copyright { font-family: var(--padrão); font-weight: 400; color: var(--muted); font-size: 0.85rem; margin: 0; }
.h5-copyright a.link { color: var(--muted); text-decoration: underline; }
.h5-copyright a.link:hover { color: var(--azul); }
.site-footer { display: flex; align-items: center; justify-content: space-between; padding: 24px 0; border-top: var(--border); color: var(--muted); }
.back-to-top { position: fixed; right: 20px; bottom: 20px; opacity: 0; pointer-events: none; transition: opacity 0.3s ease; z-index: 100; }
.back-to-top.visible { opacity: 1; pointer-events: auto; }
.bt-back-top { background-color: var(--brand); color: #fff; width: 45px; height: 45px; border-radius: 50%; display: flex; align-items: center; justify-content: center; text-decoration: none; box-shadow: 0 2px 8px rgba(0,0,0,0.2); }
.bt-back-top::before { content: '↑'; font-size: 1.5rem; line-height: 1; }
.bt-back-top:hover { background-color: #e06a5a; }

/* plantas */
.section-plantas { background: var(--bg); padding: 60px 0; }
.plantas-grid { display: grid; grid-template-columns: 1fr 400px; align-items: flex-start; gap: 40px; }
.plantas-left { display: flex; flex-direction: column; gap: 20px; }
.planta-imagem-wrap { display: flex; justify-content: center; align-items: center; background-color: #fff; border-radius: var(--radius); box-shadow: var(--shadow); padding: 20px; overflow: hidden; }
.planta-imagem-wrap img { max-width: 100%; height: auto; object-fit: contain; max-height: 400px; }
.planta-card { align-self: flex-start; background: #fff; border: 1px solid rgba(21, 35, 40, .1); border-radius: 12px; padding: 24px; box-shadow: 0 4px 12px rgba(0, 0, 0, .06); }
.planta-card .h3 { font-weight: 700; margin-bottom: 8px; }
.planta-disponibilidade { display: inline-flex; align-items: center; gap: 6px; margin-bottom: 14px; color: var(--brand); font-weight: 600; background-color: rgba(244, 123, 107, 0.1); padding: 4px 8px; border-radius: 4px; font-size: 0.9rem; }
.planta-disponibilidade span { font-size: 1rem; }
.btn-agendar { width: 100%; justify-content: center; margin-bottom: 20px; margin-top: 10px; }
.planta-card .h4 { font-weight: 700; color: var(--brand-2); margin: 20px 0 8px 0; font-size: 1rem; }
.planta-desc { font-size: 0.95rem; color: var(--muted); line-height: 1.6; }

/* local */
.section-local { background-color: var(--cinza-1); padding: 60px 0; }
.div-local { display: flex; justify-content: space-between; align-items: stretch; gap: 40px; max-width: 1160px; margin-inline: auto; padding-inline: 20px; }
.div-txt-local { display: flex; flex-direction: column; gap: 24px; width: 55%; flex-shrink: 0; }
.div-txt-local .h2 { font-family: var(--padrão); font-weight: 600; font-size: clamp(22px, 3.6vw, 34px); color: var(--azul); margin: 0; margin-bottom: 8px; }
.div-txt-local .h4 { font-family: var(--padrão); font-size: 1rem; font-weight: 400; color: var(--muted); line-height: 1.7; margin: 0; }
.div-icon-txt-local { display: flex; align-items: center; gap: 12px; }
.img-icon-local { background-color: var(--branco-lofteria); border-radius: 6px; padding: 6px; width: 32px; height: 32px; flex-shrink: 0; }
.h4-local { color: var(--azul); font-size: 0.95rem; font-weight: 500; margin: 0; }
.div-maps { width: 40%; flex-shrink: 0; display: flex; flex-direction: column; }
.map-embed { overflow: hidden; background: #fff; border: 1px solid #e7e7e7; border-radius: 12px; box-shadow: 0 4px 10px rgba(0, 0, 0, 0.08); position: relative; flex: 1; min-height: 400px; }
.map-embed iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border: 0; }

@media (max-width: 1100px) { .gallery-image { width: 240px; height: 160px; } .gallery-arrow-left { left: -50px; } .gallery-arrow-right { right: -50px; } }
@media (max-width: 991px) { .hero.hero-cover { padding: 30px 50px; } .section-local { padding: 30px 50px; } .gallery-arrow-left { left: -30px; } .gallery-arrow-right { right: -30px; } .image-row-2 { display: none !important; } .image-view { display: block; } .gallery-image { width: 200px; height: 140px; } .div-ficha-tecnica { flex-direction: column-reverse; gap: 32px; } .div-txt-ficha, .div-img-ficha { width: 100%; } .h4-infos, .h5-infos { font-size: 1rem; } .div-detalhe { flex-direction: column; align-items: flex-start; gap: 5px; text-align: left; } .h5-infos { text-align: left;} .div-local { flex-direction: column; gap: 32px; } .div-txt-local, .div-maps { width: 100%; } .map-embed { min-height: 300px; } .plantas-grid { grid-template-columns: 1fr; } .planta-card { width: 100%; margin-top: 24px; align-self: stretch; } }
@media (max-width: 880px) { .hero.hero-cover { padding: 30px 40px; } .section-local { padding: 30px 40px; } .grid-2, .hero-grid { grid-template-columns: 1fr; } }
@media (max-width: 768px) { .hero.hero-cover { padding: 35px 45px; } .section-local { padding: 35px 45px; } .div-tabelas { grid-template-columns: 1fr; gap: 25px; } }
@media (max-width: 767px) { .hero.hero-cover { padding: 35px 40px; } .section-local { padding: 35px 40px; } .custom-accordion { font-size: 1rem; padding: 15px 40px 15px 20px; } .custom-panel { font-size: 0.95rem; } .custom-accordion::after { right: 20px; } .div-footer { flex-direction: column; align-items: center; text-align: center; gap: 25px; } .div-fale-com-vendas, .div-social-media { align-items: center; text-align: center; } .div-icons-social-media { justify-content: center; } }
@media (max-width: 640px) { .hero.hero-cover { padding: 30px 40px; } .section-local { padding: 30px 40px; } .nav { display: none; } .cards-3, .cards-4 { grid-template-columns: 1fr; } }
@media (max-width: 600px) { .hero.hero-cover { padding: 25px 30px; } .section-local { padding: 25px 30px; } .gallery-arrow-left, .gallery-arrow-right { display: none; } .gallery-image { width: 80vw; height: auto; } .horizontal-scroll-container { gap: 10px; } }
`
