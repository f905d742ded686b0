package web

import "github.com/a-h/templ"

// AdminView is the whole-console admin page. It is deliberately one page:
// the operator keeps a single tab open next to the projector display.
func AdminView() templ.Component {
	return page("Admin", `
      <header class="hero">
        <span class="tag">Admin</span>
        <h1>Event console</h1>
      </header>

      <section class="panel">
        <h2>Award points</h2>
        <form id="awardForm" class="row">
          <select id="awardHouse">`+houseOptions+`</select>
          <input id="awardDelta" type="number" value="5"/>
          <input id="awardReason" placeholder="Reason"/>
          <input id="awardName" placeholder="Player (optional)"/>
          <button type="submit" class="primary">Award</button>
        </form>
        <div id="awardResult" class="result"></div>
        <div id="totals" class="totals"></div>
        <ul id="recent" class="log"></ul>
      </section>

      <section class="panel">
        <h2>Trivia</h2>
        <div class="row">
          <select id="questionPick"></select>
          <button id="triviaStart" class="primary">Start question</button>
          <button id="triviaStop" class="secondary">Stop</button>
          <button id="triviaSeed" class="secondary">Seed sample questions</button>
        </div>
        <ol id="buzzQueue" class="queue"></ol>
      </section>

      <section class="panel">
        <h2>Horcrux hunt</h2>
        <div class="row">
          <button id="horcruxStart" class="primary">Start hunt</button>
          <button id="horcruxStop" class="secondary">Stop hunt</button>
          <button id="horcruxReset" class="secondary">Reset all progress</button>
        </div>
        <div id="horcruxStatus" class="status"></div>
      </section>

      <section class="panel">
        <h2>Check-ins</h2>
        <ul id="checkins" class="log"></ul>
      </section>

      <section class="panel">
        <h2>Sock guesses</h2>
        <ul id="sockGuesses" class="log"></ul>
      </section>

      <script>`+identityScript+`
      document.getElementById('awardForm').addEventListener('submit', async (e) => {
        e.preventDefault();
        const out = await postJSON('/api/admin/points/award', {
          house: document.getElementById('awardHouse').value,
          delta: Number(document.getElementById('awardDelta').value),
          reason: document.getElementById('awardReason').value,
          display_name: document.getElementById('awardName').value,
        });
        document.getElementById('awardResult').textContent =
          out.ok ? out.house + ' now has ' + out.total + ' points.' : out.error;
      });

      document.getElementById('triviaSeed').addEventListener('click', async () => {
        await postJSON('/api/admin/trivia/seed');
        loadQuestions();
      });
      document.getElementById('triviaStart').addEventListener('click', async () => {
        const id = Number(document.getElementById('questionPick').value);
        if (id) await postJSON('/api/admin/trivia/start', { id });
      });
      document.getElementById('triviaStop').addEventListener('click', () => postJSON('/api/admin/trivia/stop'));
      document.getElementById('horcruxStart').addEventListener('click', () => postJSON('/api/admin/horcrux/start'));
      document.getElementById('horcruxStop').addEventListener('click', () => postJSON('/api/admin/horcrux/stop'));
      document.getElementById('horcruxReset').addEventListener('click', async () => {
        if (confirm('Wipe every player’s hunt progress?')) await postJSON('/api/admin/horcrux/reset');
      });

      async function loadQuestions() {
        const out = await getJSON('/api/trivia/questions');
        if (!out.ok) return;
        document.getElementById('questionPick').innerHTML =
          (out.data || []).map(q => '<option value="' + q.id + '">' + q.text + '</option>').join('');
      }

      async function refresh() {
        try {
          const totals = await getJSON('/api/points/totals');
          if (totals.ok) {
            document.getElementById('totals').innerHTML = (totals.data || []).map(t =>
              '<div class="house ' + t.House + '"><strong>' + t.House + '</strong><span>' + t.Points + '</span></div>').join('');
          }
          const recent = await getJSON('/api/points/recent');
          if (recent.ok) {
            document.getElementById('recent').innerHTML = (recent.data || []).map(e =>
              '<li>' + (e.House || 'No house') + ' ' + (e.Delta > 0 ? '+' : '') + e.Delta + ' &mdash; ' + e.Reason + '</li>').join('');
          }
          const buzzes = await getJSON('/api/trivia/buzzes');
          if (buzzes.ok) {
            document.getElementById('buzzQueue').innerHTML = (buzzes.data || []).map(b =>
              '<li>' + b.DisplayName + (b.House ? ' (' + b.House + ')' : '') + '</li>').join('');
          }
          const horcrux = await getJSON('/api/horcrux/session');
          if (horcrux.ok) {
            document.getElementById('horcruxStatus').textContent =
              horcrux.data && horcrux.data.Active ? 'Hunt is ACTIVE' : 'Hunt is stopped';
          }
          const checkins = await getJSON('/api/admin/checkins');
          if (checkins.ok) {
            document.getElementById('checkins').innerHTML = (checkins.data || []).map(c =>
              '<li>' + c.DisplayName + ' (' + c.House + ')</li>').join('');
          }
          const socks = await getJSON('/api/admin/socks/guesses');
          if (socks.ok) {
            document.getElementById('sockGuesses').innerHTML = (socks.data || []).map(g =>
              '<li>' + g.DisplayName + ' (' + g.House + '): ' + g.Guess + '</li>').join('');
          }
        } catch (err) {}
        setTimeout(refresh, 2000);
      }
      loadQuestions();
      refresh();
      </script>
`)
}
