package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const houseOptions = `<option value="">Choose your house</option>
<option>Gryffindor</option>
<option>Ravenclaw</option>
<option>Hufflepuff</option>
<option>Slytherin</option>`

// page wraps a body in the shared document shell. Pages are static HTML
// with small inline scripts that poll the JSON API.
func page(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+title+`</title>
    <link rel="stylesheet" href="/static/styles.css"/>
  </head>
  <body>
    <main class="shell">
`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
		_, err := io.WriteString(w, `
    </main>
  </body>
</html>
`)
		return err
	})
}

// identityScript persists the player's name and house in localStorage so
// every game page shares one identity, matching the party's check-in.
const identityScript = `
function loadIdentity() {
  const name = localStorage.getItem('hp_player_name') || '';
  const house = localStorage.getItem('hp_player_house') || '';
  const nameEl = document.getElementById('playerName');
  const houseEl = document.getElementById('playerHouse');
  if (nameEl) nameEl.value = name;
  if (houseEl) houseEl.value = house;
  return { name, house };
}
function saveIdentity() {
  const nameEl = document.getElementById('playerName');
  const houseEl = document.getElementById('playerHouse');
  if (nameEl) localStorage.setItem('hp_player_name', nameEl.value.trim());
  if (houseEl) localStorage.setItem('hp_player_house', houseEl.value);
}
async function postJSON(url, payload) {
  const res = await fetch(url, {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(payload || {}),
  });
  return res.json();
}
async function getJSON(url) {
  const res = await fetch(url + (url.includes('?') ? '&' : '?') + 'ts=' + Date.now(), { cache: 'no-store' });
  return res.json();
}
`
