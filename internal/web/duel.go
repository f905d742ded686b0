package web

import (
	"strconv"

	"github.com/a-h/templ"
)

// DuelView is the audience page: guess the spell being performed.
func DuelView() templ.Component {
	return page("Wizard Duel", `
      <header class="hero">
        <span class="tag">Wizard Duel</span>
        <h1>What spell is that?</h1>
      </header>
      <section class="panel">
        <input id="playerName" placeholder="Your name" autocomplete="name"/>
        <select id="playerHouse">`+houseOptions+`</select>
        <div id="status" class="status">Waiting for a duel&hellip;</div>
        <div id="options" class="options"></div>
        <div id="result" class="result"></div>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      let session = null;
      function renderOptions() {
        const el = document.getElementById('options');
        if (!session || !session.Active || !session.CurrentSpell) { el.innerHTML = ''; return; }
        const opts = session.Options || [];
        el.innerHTML = opts.map(o => '<button class="secondary option">' + o + '</button>').join('');
        for (const btn of el.querySelectorAll('button')) {
          btn.addEventListener('click', async () => {
            saveIdentity();
            const out = await postJSON('/api/duel/buzz', {
              display_name: document.getElementById('playerName').value,
              house: document.getElementById('playerHouse').value,
              round: session.Round,
            });
            document.getElementById('result').textContent = out.ok ? 'You buzzed: ' + btn.textContent : out.error;
          });
        }
      }
      async function poll() {
        try {
          const out = await getJSON('/api/duel/session');
          if (out.ok) {
            const prev = session && session.Round;
            session = out.data;
            document.getElementById('status').textContent =
              session && session.Active ? 'Duel in progress!' : 'Waiting for a duel…';
            if (!session || session.Round !== prev) renderOptions();
          }
        } catch (err) {}
        setTimeout(poll, 1000);
      }
      poll();
      </script>
`)
}

// DuelActorView is the performer's console: draw a spell, run the turn,
// award the fastest correct guesser. The crediting deltas are policy
// configuration, not fixed rules.
func DuelActorView(sameHouseAward, rivalAward int) templ.Component {
	same := strconv.Itoa(sameHouseAward)
	rival := strconv.Itoa(rivalAward)
	return page("Duel Actor", `
      <header class="hero">
        <span class="tag">Duel Actor</span>
        <h1>Act it out.</h1>
      </header>
      <section class="panel">
        <input id="playerName" placeholder="Actor name" autocomplete="name"/>
        <select id="playerHouse">`+houseOptions+`</select>
        <div class="row">
          <button id="draw" class="primary">Draw spell</button>
          <button id="resetDeck" class="secondary">Reset deck</button>
          <button id="endTurn" class="secondary">End turn</button>
        </div>
        <div id="spell" class="status"></div>
        <h2>Buzzes</h2>
        <ol id="queue" class="queue"></ol>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      const SAME_HOUSE_AWARD = `+same+`;
      const RIVAL_AWARD = `+rival+`;
      let current = null;
      let catalog = [];
      async function loadCatalog() {
        const out = await getJSON('/api/duel/spells');
        if (out.ok) catalog = out.data || [];
      }
      loadCatalog();
      function shuffle(list) {
        for (let i = list.length - 1; i > 0; i--) {
          const j = Math.floor(Math.random() * (i + 1));
          [list[i], list[j]] = [list[j], list[i]];
        }
        return list;
      }
      // the correct incantation plus up to four decoys from the catalog
      function buildOptions(correct) {
        const decoys = shuffle(catalog.map(s => s.Incantation).filter(i => i !== correct)).slice(0, 4);
        return shuffle(decoys.concat([correct]));
      }
      document.getElementById('draw').addEventListener('click', async () => {
        saveIdentity();
        if (catalog.length === 0) await loadCatalog();
        const out = await postJSON('/api/duel/deck/draw');
        if (!out.ok) { document.getElementById('spell').textContent = out.error; return; }
        if (!out.spell) { document.getElementById('spell').textContent = 'Deck is empty. Reset to go again.'; return; }
        current = out.spell;
        document.getElementById('spell').innerHTML =
          '<strong>' + current.Incantation + '</strong> (' + current.Name + ')<br/>' + current.Gesture;
        await postJSON('/api/duel/session', {
          active: true,
          current_spell: current.Incantation,
          options: buildOptions(current.Incantation),
        });
      });
      document.getElementById('resetDeck').addEventListener('click', async () => {
        const out = await postJSON('/api/duel/deck/reset');
        document.getElementById('spell').textContent = out.ok ? 'Deck reshuffled.' : out.error;
      });
      document.getElementById('endTurn').addEventListener('click', async () => {
        current = null;
        await postJSON('/api/duel/session', { active: false });
        document.getElementById('spell').textContent = '';
      });
      async function award(buzz) {
        const actorHouse = document.getElementById('playerHouse').value;
        const delta = buzz.House === actorHouse ? SAME_HOUSE_AWARD : RIVAL_AWARD;
        const out = await postJSON('/api/admin/points/award', {
          house: buzz.House,
          delta: delta,
          reason: 'Duel: guessed ' + (current ? current.Incantation : ''),
          display_name: buzz.DisplayName,
        });
        if (out.ok) {
          await postJSON('/api/duel/session', { reveal: true, winner_house: buzz.House });
        }
      }
      async function poll() {
        try {
          const out = await getJSON('/api/duel/buzzes');
          if (out.ok) {
            const queue = document.getElementById('queue');
            queue.innerHTML = (out.data || []).map((b, i) =>
              '<li>' + b.DisplayName + (b.House ? ' (' + b.House + ')' : '') +
              (b.House ? ' <button class="secondary" data-i="' + i + '">Award</button>' : '') + '</li>').join('');
            for (const btn of queue.querySelectorAll('button')) {
              btn.addEventListener('click', () => award(out.data[Number(btn.dataset.i)]));
            }
          }
        } catch (err) {}
        setTimeout(poll, 1000);
      }
      poll();
      </script>
`)
}

func DuelDisplayView() templ.Component {
	return page("Duel Display", `
      <header class="hero">
        <span class="tag">Wizard Duel</span>
        <h1 id="headline">Waiting for a duel&hellip;</h1>
      </header>
      <section class="panel">
        <div id="reveal" class="status"></div>
      </section>
      <script>`+identityScript+`
      async function poll() {
        try {
          const out = await getJSON('/api/duel/session');
          if (out.ok && out.data) {
            const s = out.data;
            document.getElementById('headline').textContent =
              s.Active ? 'Duel in progress!' : 'Waiting for a duel…';
            const reveal = document.getElementById('reveal');
            if (s.Active && s.Reveal) {
              reveal.className = 'status house ' + (s.WinnerHouse || '');
              reveal.innerHTML = '<h2>' + (s.CurrentSpell || '') + '</h2>' +
                (s.WinnerHouse ? '<p>Point to ' + s.WinnerHouse + '!</p>' : '');
            } else {
              reveal.className = 'status';
              reveal.textContent = s.Active ? 'Guess the spell!' : '';
            }
          }
        } catch (err) {}
        setTimeout(poll, 600);
      }
      poll();
      </script>
`)
}
