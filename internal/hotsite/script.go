package hotsite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dudaspaulo/gerador-de-walka/internal/project"
)

// defaultInitialStyle is the plant style the script starts on when no plant
// carries a style.
const defaultInitialStyle = "eco"

type scriptData struct {
	Panels       string
	InitialStyle string
	ImageMap     string
}

// RenderJS returns the behavior script with the plant image table, the tour
// panel map and the initial plant style filled in.
func (g *Generator) RenderJS(full *project.Full) (string, error) {
	if full == nil {
		return "", ErrNilProject
	}

	plantStyles := ActiveStyles(full.Plants)
	table, err := BuildPlantImageMap(plantStyles, full.Plants).MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encoding plant image map: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, table, "  ", "  "); err != nil {
		return "", fmt.Errorf("indenting plant image map: %w", err)
	}

	initial := defaultInitialStyle
	if len(plantStyles) > 0 {
		initial = strings.ToLower(plantStyles[0])
	}
	initialJSON, err := json.Marshal(initial)
	if err != nil {
		return "", fmt.Errorf("encoding initial style: %w", err)
	}

	panels, err := panelEntries(ActiveStyles(full.Tours))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = g.script.Execute(&buf, scriptData{
		Panels:       panels,
		InitialStyle: string(initialJSON),
		ImageMap:     pretty.String(),
	})
	if err != nil {
		return "", fmt.Errorf("executing script template: %w", err)
	}
	return buf.String(), nil
}

// panelEntries writes one object-literal line per tour style, mapping the
// lower-cased key to its panel element. Keys are JSON-quoted so any label is
// a valid property name.
func panelEntries(styles []string) (string, error) {
	lines := make([]string, 0, len(styles))
	for _, style := range styles {
		key := strings.ToLower(style)
		k, err := json.Marshal(key)
		if err != nil {
			return "", fmt.Errorf("encoding panel key: %w", err)
		}
		id, err := json.Marshal("panel-" + key)
		if err != nil {
			return "", fmt.Errorf("encoding panel id: %w", err)
		}
		lines = append(lines, fmt.Sprintf("    %s: document.getElementById(%s)", k, id))
	}
	return strings.Join(lines, ",\n"), nil
}

const scriptTemplate = `document.addEventListener("DOMContentLoaded", function() {
  // Tour Tabs
  const tabs = document.querySelectorAll('.tab');
  const panels = {
{{.Panels}}
  };
  
  tabs.forEach(t => t.addEventListener('click', () => {
    tabs.forEach(x => x.classList.remove('is-active'));
    t.classList.add('is-active');
    const key = t.dataset.tab;
    Object.values(panels).forEach(p => p && p.classList.remove('is-active'));
    if(panels[key]) panels[key].classList.add('is-active');
    const toursSec = document.getElementById('tours');
    if(toursSec) toursSec.scrollIntoView({behavior:'smooth', block:'start'});
  }));

  // Tour Iframe Switcher
  document.querySelectorAll('.tour-selector').forEach(group => {
    const wrap = group.nextElementSibling?.querySelector('iframe');
    if(!wrap) return;
    group.querySelectorAll('.btn').forEach(btn => {
      btn.addEventListener('click', () => {
        group.querySelectorAll('.btn').forEach(b => b.classList.remove('is-active'));
        btn.classList.add('is-active');
        const url = btn.dataset.iframe;
        if(url) wrap.src = url;
      });
    });
  });

  // Smooth Scroll
  document.querySelectorAll('a[href^="#"]').forEach(a => {
    a.addEventListener('click', (e) => {
      const id = a.getAttribute('href').slice(1);
      const el = document.getElementById(id) || document.querySelector('[name="' + id + '"]');
      if(el){
        e.preventDefault();
        el.scrollIntoView({behavior: 'smooth', block: 'start'});
      }
    });
  });

  // Back to Top
  const backTop = document.querySelector('.back-to-top');
  const onScroll = () => {
    if(!backTop) return;
    if(window.scrollY > 480) backTop.classList.add('visible');
    else backTop.classList.remove('visible');
  };
  window.addEventListener('scroll', onScroll);
  onScroll();

  // FAQ accordion
  const acc = document.getElementsByClassName("custom-accordion");
  for (let i = 0; i < acc.length; i++) {
    acc[i].addEventListener("click", function() {
      this.classList.toggle("active");
      const panel = this.nextElementSibling;
      if (panel.style.maxHeight) {
        panel.style.maxHeight = null;
      } else {
        panel.style.maxHeight = panel.scrollHeight + "px";
      }
    });
  }

  // Plantas Logic
  const styleBtns = document.querySelectorAll(".style-tabs .btn");
  const packageBtns = document.querySelectorAll(".package-tabs .btn");
  const img = document.getElementById("planta-img");
  const nome = document.getElementById("planta-nome");
  const desc = document.getElementById("planta-desc");

  let currentStyle = {{.InitialStyle}};
  let currentPackage = "standard";

  const imgMap = {{.ImageMap}};

  const infoMap = {
    standard: "Studio Standard - Imóvel entregue padrão",
    basic: "Studio Basic - Solução prática e econômica para investidores que buscam agilidade na venda ou locação anual do imóvel",
    essential: "Studio Essential - Pensado para imóveis de short stay, com foco em performance e controle de custos",
    design: "Studio Design - Projetado para imóveis de estadia premium, com foco em estética refinada e alto valor percebido"
  };

  function updatePlanta() {
    if (!imgMap[currentStyle] || !imgMap[currentStyle][currentPackage]) {
      console.warn("Imagem não encontrada para: " + currentStyle + " " + currentPackage);
      return;
    }
    if (img) img.src = imgMap[currentStyle][currentPackage];
    const capitalize = s => s.charAt(0).toUpperCase() + s.slice(1);
    if (nome) nome.textContent = "Studio " + capitalize(currentPackage) + " — " + capitalize(currentStyle);
    if (desc) desc.textContent = infoMap[currentPackage];
  }

  styleBtns.forEach(btn => {
    btn.addEventListener("click", e => {
      e.preventDefault();
      styleBtns.forEach(b => b.classList.remove("is-active"));
      btn.classList.add("is-active");
      currentStyle = btn.dataset.plant;
      updatePlanta();
    });
  });

  packageBtns.forEach(btn => {
    btn.addEventListener("click", e => {
      e.preventDefault();
      packageBtns.forEach(b => b.classList.remove("is-active"));
      btn.classList.add("is-active");
      currentPackage = btn.dataset.package;
      updatePlanta();
    });
  });
  
  updatePlanta();

  // Gallery Scroll
  const scrollContainer = document.querySelector(".horizontal-scroll-container");
  const leftArrow = document.querySelector(".gallery-arrow-left");
  const rightArrow = document.querySelector(".gallery-arrow-right");
  if (leftArrow && rightArrow && scrollContainer) {
    leftArrow.addEventListener("click", () => scrollContainer.scrollBy({ left: -scrollContainer.clientWidth * 0.8, behavior: "smooth" }));
    rightArrow.addEventListener("click", () => scrollContainer.scrollBy({ left: scrollContainer.clientWidth * 0.8, behavior: "smooth" }));
  }

  // Modal Lightbox
  const modal = document.getElementById("image-modal");
  const modalImg = document.getElementById("modal-image");
  const closeModal = document.querySelector(".close-modal");
  const modalArrowLeft = document.querySelector(".modal-arrow-left");
  const modalArrowRight = document.querySelector(".modal-arrow-right");
  const galleryImages = document.querySelectorAll(".gallery-image");
  let currentIndex = 0;

  if(galleryImages.length > 0) {
    galleryImages.forEach((img, index) => {
      img.addEventListener("click", () => {
        modal.classList.add("active");
        modalImg.src = img.src;
        currentIndex = index;
      });
    });
    
    const showImage = (index) => {
      if (index < 0) index = galleryImages.length - 1;
      if (index >= galleryImages.length) index = 0;
      currentIndex = index;
      modalImg.src = galleryImages[currentIndex].src;
    };
    
    if (modalArrowLeft) modalArrowLeft.addEventListener("click", () => showImage(currentIndex - 1));
    if (modalArrowRight) modalArrowRight.addEventListener("click", () => showImage(currentIndex + 1));
    if (closeModal) closeModal.addEventListener("click", () => modal.classList.remove("active"));
    if (modal) modal.addEventListener("click", (e) => { if (e.target === modal) modal.classList.remove("active"); });
    
    document.addEventListener("keydown", (e) => {
      if (!modal || !modal.classList.contains("active")) return;
      if (e.key === "ArrowLeft") showImage(currentIndex - 1);
      if (e.key === "ArrowRight") showImage(currentIndex + 1);
      if (e.key === "Escape") modal.classList.remove("active");
    });
  }
});
`
