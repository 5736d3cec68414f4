package render

// cssContent is the stylesheet written alongside the generated page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2430;
  --muted: #5c6370;
  --accent: #2563eb;
  --card-bg: #f6f8fa;
  --border: #e1e4e8;
  --highlight: #fde68a;
  --error-bg: #fef2f2;
  --error-fg: #991b1b;
}

[data-theme="dark"] {
  --bg: #0d1117;
  --fg: #e6edf3;
  --muted: #8b949e;
  --accent: #58a6ff;
  --card-bg: #161b22;
  --border: #30363d;
  --highlight: #433c16;
  --error-bg: #2d1416;
  --error-fg: #f87171;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--fg);
  line-height: 1.6;
}

main { max-width: 960px; margin: 0 auto; padding: 0 1.5rem; }

section { padding: 3rem 0; border-bottom: 1px solid var(--border); }

.section-heading { font-size: 1.6rem; margin: 0 0 1.5rem; }

.section-error {
  background: var(--error-bg);
  color: var(--error-fg);
  border: 1px solid currentColor;
  border-radius: 8px;
  padding: 1rem 1.5rem;
}

/* Hero */
#hero { text-align: center; padding: 5rem 0; }
.hero-title { font-size: 2.8rem; margin: 0; }
.hero-subtitle { font-size: 1.3rem; color: var(--muted); margin: 0.5rem 0 1.5rem; }
.hero-cta {
  display: inline-block;
  background: var(--accent);
  color: #fff;
  padding: 0.6rem 1.4rem;
  border-radius: 6px;
  text-decoration: none;
}

/* About */
.about-grid { display: grid; grid-template-columns: 320px 1fr; gap: 2rem; align-items: start; }
.about-grid.single-column { grid-template-columns: 1fr; }
.about-photo img { border-radius: 12px; max-width: 100%; }

/* Experience */
.experience-entry { margin-bottom: 2rem; }
.experience-title { margin: 0; }
.experience-company { color: var(--accent); margin: 0.1rem 0; }
.experience-duration { color: var(--muted); font-size: 0.9rem; margin: 0.1rem 0 0.75rem; }
.tech-tags, .tool-tags { list-style: none; display: flex; flex-wrap: wrap; gap: 0.4rem; padding: 0; margin: 0.5rem 0; }
.tech-tag, .tool-tag {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 0.15rem 0.7rem;
  font-size: 0.8rem;
}
button.tool-tag { cursor: pointer; color: inherit; }
.achievements-toggle, .category-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--accent);
  cursor: pointer;
  padding: 0.3rem 0.8rem;
  margin: 0.5rem 0;
}
.achievements { overflow: hidden; }
.achievements.collapsed { display: none; }
.achievement { opacity: 1; transition: opacity 0.3s ease, transform 0.3s ease; }
.achievement.revealing { opacity: 0; transform: translateY(6px); }

/* Projects */
.filter-bar { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-bottom: 1rem; }
.filter-btn, .category-btn {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 999px;
  color: inherit;
  cursor: pointer;
  padding: 0.3rem 0.9rem;
}
.filter-btn.active, .category-btn.active { background: var(--accent); color: #fff; border-color: var(--accent); }
.project-count { color: var(--muted); font-size: 0.9rem; }
.project-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.5rem; }
.project-card {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 12px;
  padding: 1.25rem;
}
.project-card.hidden { display: none; }
.project-thumb { width: 100%; border-radius: 8px; aspect-ratio: 16 / 9; object-fit: cover; }
.project-thumb.placeholder {
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--border);
  color: var(--muted);
  font-size: 2rem;
  font-weight: 700;
}
.project-outcomes { padding-left: 1.2rem; }
.project-links { list-style: none; padding: 0; display: flex; gap: 1rem; }

/* Skills */
.skills-controls { display: flex; flex-wrap: wrap; gap: 1rem; margin-bottom: 1.5rem; }
.skills-search {
  flex: 1 1 240px;
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  color: inherit;
  padding: 0.5rem 0.9rem;
}
.category-filter { display: flex; flex-wrap: wrap; gap: 0.5rem; }
.skill-category { border: none; padding: 0.5rem 0; }
.skill-category.hidden { display: none; }
.skill-list { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 0.6rem; }
.skill-list.collapsed { display: none; }
.skill-item {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  cursor: pointer;
  padding: 0.4rem 0.8rem;
  display: flex;
  align-items: center;
  gap: 0.5rem;
}
.skill-item.hidden { display: none; }
.skill-item.highlight { background: var(--highlight); }
.skill-icon { width: 18px; height: 18px; }
.skill-proficiency { color: var(--muted); font-size: 0.75rem; }
.skill-detail { flex-basis: 100%; font-size: 0.85rem; color: var(--muted); }

/* Contact */
.contact-links { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 1.25rem; }
.contact-link { color: var(--accent); text-decoration: none; }

/* Lazy images */
.lazy-image { opacity: 0; transition: opacity 0.4s ease; }
.lazy-image.loaded { opacity: 1; }
.lazy-image.error { display: none; }
.image-fallback {
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--border);
  color: var(--muted);
  border-radius: 8px;
  min-height: 160px;
}

.theme-toggle {
  position: fixed;
  top: 1rem;
  right: 1rem;
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 999px;
  color: inherit;
  cursor: pointer;
  padding: 0.4rem 0.9rem;
}

@media (max-width: 720px) {
  .about-grid { grid-template-columns: 1fr; }
}

@media (prefers-reduced-motion: reduce) {
  .achievement, .lazy-image { transition: none; }
}
`

// jsContent is the page script. It carries the browser-only behaviors:
// theme persistence, smooth scroll, achievement toggles with staggered
// reveal, project filtering, debounced skills search, collapsible
// categories, single-open skill details, lazy image loading and contact
// click tracking. The data-dependent matching rules mirror the Go logic in
// this package so build output and serve-mode fragments agree.
const jsContent = `(function () {
  'use strict';

  var THEME_KEY = 'folio-theme';
  var DEBOUNCE_MS = 300;
  var reducedMotion = window.matchMedia('(prefers-reduced-motion: reduce)').matches;

  // --- Theme toggle, persisted to localStorage ---------------------------
  var saved = null;
  try { saved = localStorage.getItem(THEME_KEY); } catch (e) { /* private mode */ }
  if (saved === 'light' || saved === 'dark') {
    document.documentElement.setAttribute('data-theme', saved);
  }
  var themeBtn = document.getElementById('theme-toggle');
  if (themeBtn) {
    themeBtn.addEventListener('click', function () {
      var next = document.documentElement.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
      document.documentElement.setAttribute('data-theme', next);
      try { localStorage.setItem(THEME_KEY, next); } catch (e) { /* ignore */ }
    });
  }

  // --- Smooth scroll for in-page anchors ---------------------------------
  document.querySelectorAll('a[href^="#"]').forEach(function (a) {
    a.addEventListener('click', function (ev) {
      var target = document.querySelector(a.getAttribute('href'));
      if (!target) return;
      ev.preventDefault();
      target.scrollIntoView({ behavior: reducedMotion ? 'auto' : 'smooth' });
    });
  });

  // --- Experience achievement toggles ------------------------------------
  document.querySelectorAll('.achievements-toggle').forEach(function (btn) {
    var list = document.getElementById(btn.getAttribute('aria-controls'));
    if (!list) return;
    btn.addEventListener('click', function () {
      var expanded = btn.getAttribute('aria-expanded') === 'true';
      btn.setAttribute('aria-expanded', String(!expanded));
      btn.textContent = expanded ? btn.dataset.showLabel : btn.dataset.hideLabel;
      list.classList.toggle('collapsed', expanded);
      if (!expanded && !reducedMotion) {
        list.querySelectorAll('.achievement').forEach(function (li) {
          li.classList.add('revealing');
          setTimeout(function () { li.classList.remove('revealing'); },
            parseInt(li.dataset.stagger || '0', 10));
        });
      }
    });
  });

  // --- Project filtering ---------------------------------------------------
  var grid = document.getElementById('project-grid');
  var countEl = document.getElementById('project-count');

  function applyFilter(filter) {
    if (!grid) return;
    var visible = 0;
    grid.querySelectorAll('.project-card').forEach(function (card) {
      var tools = (card.dataset.tools || '').split(',');
      var show = filter === 'all' || tools.some(function (t) {
        return t.indexOf(filter.toLowerCase()) !== -1;
      });
      card.classList.toggle('hidden', !show);
      if (show) visible++;
    });
    if (countEl) {
      countEl.textContent = visible === 1 ? '1 project' : visible + ' projects';
    }
    document.querySelectorAll('.filter-btn').forEach(function (b) {
      b.classList.toggle('active', b.dataset.filter === filter);
    });
  }

  document.querySelectorAll('.filter-btn').forEach(function (btn) {
    btn.addEventListener('click', function () { applyFilter(btn.dataset.filter); });
  });

  // Tool tags on cards delegate to the matching filter button.
  document.addEventListener('click', function (ev) {
    var tag = ev.target.closest('.tool-tag');
    if (tag && tag.dataset.tool) applyFilter(tag.dataset.tool);
  });

  // --- Skills search (debounced) and category filter -----------------------
  var searchInput = document.getElementById('skills-search');
  var pendingTimer = null;

  function runSearch(query) {
    query = query.trim().toLowerCase();
    document.querySelectorAll('.skill-category').forEach(function (cat) {
      var catName = cat.dataset.category || '';
      var catHit = query !== '' && catName.indexOf(query) !== -1;
      var anyVisible = false;
      cat.querySelectorAll('.skill-item').forEach(function (item) {
        var name = item.dataset.skill || '';
        var show, hit;
        if (query === '') {
          show = true; hit = false;
        } else {
          hit = name.indexOf(query) !== -1 || catHit;
          show = hit;
        }
        item.classList.toggle('hidden', !show);
        item.classList.toggle('highlight', hit);
        if (show) anyVisible = true;
      });
      cat.classList.toggle('hidden', !anyVisible);
    });
  }

  if (searchInput) {
    searchInput.addEventListener('input', function () {
      // Replace any pending timer so only the last keystroke in the
      // quiet period fires.
      if (pendingTimer !== null) clearTimeout(pendingTimer);
      pendingTimer = setTimeout(function () {
        pendingTimer = null;
        runSearch(searchInput.value);
      }, DEBOUNCE_MS);
    });
  }

  // Category filter; last interaction wins against the search box.
  document.querySelectorAll('.category-btn').forEach(function (btn) {
    btn.addEventListener('click', function () {
      if (searchInput) searchInput.value = '';
      runSearch('');
      var selected = btn.dataset.category;
      document.querySelectorAll('.skill-category').forEach(function (cat) {
        cat.classList.toggle('hidden', selected !== 'all' && cat.dataset.category !== selected);
      });
      document.querySelectorAll('.category-btn').forEach(function (b) {
        b.classList.toggle('active', b === btn);
      });
    });
  });

  // Per-category expand/collapse.
  document.querySelectorAll('.category-toggle').forEach(function (btn) {
    var list = document.getElementById(btn.getAttribute('aria-controls'));
    if (!list) return;
    btn.addEventListener('click', function () {
      var expanded = btn.getAttribute('aria-expanded') === 'true';
      btn.setAttribute('aria-expanded', String(!expanded));
      list.classList.toggle('collapsed', expanded);
    });
  });

  // Skill detail panels: at most one open at a time.
  var openDetail = null;
  document.querySelectorAll('.skill-item').forEach(function (item) {
    item.addEventListener('click', function () {
      var detail = item.querySelector('.skill-detail');
      if (!detail) return;
      if (openDetail && openDetail !== detail) openDetail.hidden = true;
      detail.hidden = !detail.hidden;
      openDetail = detail.hidden ? null : detail;
    });
  });

  // --- Lazy image loading: one shared observer ----------------------------
  var lazyImages = document.querySelectorAll('img.lazy-image[data-src]');

  function loadImage(img) {
    img.addEventListener('load', function () {
      img.removeAttribute('data-src');
      img.classList.add('loaded');
    });
    img.addEventListener('error', function () {
      img.classList.add('error');
      var fallback = document.createElement('div');
      fallback.className = 'image-fallback';
      fallback.textContent = '▨';
      img.insertAdjacentElement('afterend', fallback);
    });
    img.src = img.dataset.src;
  }

  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (!entry.isIntersecting) return;
        observer.unobserve(entry.target);
        loadImage(entry.target);
      });
    }, { rootMargin: '100px' });
    lazyImages.forEach(function (img) { observer.observe(img); });
  } else {
    lazyImages.forEach(loadImage);
  }

  // --- Contact click tracking ---------------------------------------------
  document.querySelectorAll('.contact-link').forEach(function (a) {
    a.addEventListener('click', function () {
      var channel = a.dataset.channel;
      if (navigator.sendBeacon) {
        try {
          navigator.sendBeacon('/api/track', JSON.stringify({ channel: channel }));
          return;
        } catch (e) { /* static hosting, no API */ }
      }
      console.log('contact click:', channel);
    });
  });
})();
`

// CSS returns the stylesheet asset.
func CSS() string { return cssContent }

// Script returns the page script asset.
func Script() string { return jsContent }
