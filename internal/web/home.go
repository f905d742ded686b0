package web

import "github.com/a-h/templ"

func Home() templ.Component {
	return page("Hogwarts Night", `
      <header class="hero">
        <span class="tag">Hogwarts Night</span>
        <h1>Welcome to the Great Hall.</h1>
        <p>Check in, get sorted, and earn points for your house all evening.</p>
      </header>

      <section class="panel">
        <h2>Start here</h2>
        <nav class="menu">
          <a class="primary" href="/enter">Check in</a>
          <a class="secondary" href="/sorting">Sorting ceremony</a>
          <a class="secondary" href="/games">Games</a>
        </nav>
      </section>

      <section class="panel">
        <h2>House points</h2>
        <div id="totals" class="totals">No points yet.</div>
        <h3>Latest awards</h3>
        <ul id="recent" class="log"></ul>
      </section>

      <script>
      async function refresh() {
        try {
          const totals = await fetch('/api/points/totals?ts=' + Date.now(), { cache: 'no-store' }).then(r => r.json());
          const el = document.getElementById('totals');
          if (totals.ok && totals.data.length) {
            el.innerHTML = totals.data.map(t => '<div class="house ' + t.House + '"><strong>' + t.House + '</strong><span>' + t.Points + '</span></div>').join('');
          }
          const recent = await fetch('/api/points/recent?ts=' + Date.now(), { cache: 'no-store' }).then(r => r.json());
          if (recent.ok) {
            document.getElementById('recent').innerHTML = recent.data.map(e =>
              '<li>' + (e.House || 'No house') + ' ' + (e.Delta > 0 ? '+' : '') + e.Delta + ' &mdash; ' + e.Reason + '</li>').join('');
          }
        } catch (err) {}
        setTimeout(refresh, 5000);
      }
      refresh();
      </script>
`)
}

func GamesMenu() templ.Component {
	return page("Games", `
      <header class="hero">
        <span class="tag">Games</span>
        <h1>Pick your challenge.</h1>
      </header>
      <section class="panel">
        <nav class="menu">
          <a class="secondary" href="/games/trivia">Trivia buzzer</a>
          <a class="secondary" href="/games/duel">Wizard duel</a>
          <a class="secondary" href="/games/horcrux">Horcrux hunt</a>
          <a class="secondary" href="/games/socks">Sock count</a>
        </nav>
      </section>
`)
}

func EnterView() templ.Component {
	return page("Check in", `
      <header class="hero">
        <span class="tag">Check in</span>
        <h1>Who goes there?</h1>
      </header>
      <section class="panel">
        <form id="checkinForm">
          <input id="playerName" placeholder="Your name" autocomplete="name" required/>
          <select id="playerHouse" required>`+houseOptions+`</select>
          <button type="submit" class="primary">Enter the Great Hall</button>
        </form>
        <div id="result" class="result"></div>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      document.getElementById('checkinForm').addEventListener('submit', async (e) => {
        e.preventDefault();
        saveIdentity();
        const body = {
          display_name: document.getElementById('playerName').value,
          house: document.getElementById('playerHouse').value,
        };
        const out = await postJSON('/api/checkins', body);
        document.getElementById('result').textContent = out.ok ? 'Welcome, ' + body.display_name + '!' : out.error;
        if (out.ok) setTimeout(() => { window.location = '/games'; }, 900);
      });
      </script>
`)
}
