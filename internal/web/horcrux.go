package web

import "github.com/a-h/templ"

func HorcruxView() templ.Component {
	return page("Horcrux Hunt", `
      <header class="hero">
        <span class="tag">Horcrux Hunt</span>
        <h1>Find them all, in order.</h1>
      </header>
      <section class="panel">
        <input id="playerName" placeholder="Your name" autocomplete="name"/>
        <select id="playerHouse">`+houseOptions+`</select>
        <div id="status" class="status">Checking the hunt&hellip;</div>
        <div id="clue" class="clue"></div>
        <div id="hint" class="hint"></div>
        <form id="codeForm">
          <input id="codeInput" placeholder="Enter the code you found" autocomplete="off"/>
          <button type="submit" class="primary">Destroy it</button>
        </form>
        <div id="result" class="result"></div>
        <div id="progress" class="progress"></div>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      let steps = [];
      let maxDone = 0;
      let active = false;
      let hintTimer = null;
      function showClue() {
        const next = steps.find(s => s.step_order === maxDone + 1);
        const clue = document.getElementById('clue');
        const hint = document.getElementById('hint');
        hint.textContent = '';
        clearTimeout(hintTimer);
        if (!next) {
          clue.textContent = steps.length ? 'All horcruxes destroyed!' : '';
          return;
        }
        clue.textContent = next.clue;
        if (next.hint) {
          hintTimer = setTimeout(() => { hint.textContent = 'Hint: ' + next.hint; }, 150000);
        }
      }
      async function poll() {
        try {
          const session = await getJSON('/api/horcrux/session');
          if (session.ok) {
            active = !!(session.data && session.data.Active);
            document.getElementById('status').textContent = active ? 'The hunt is on!' : 'The hunt has not started.';
          }
          const name = localStorage.getItem('hp_player_name') || '';
          const house = localStorage.getItem('hp_player_house') || '';
          if (name) {
            const prog = await getJSON('/api/horcrux/progress?name=' + encodeURIComponent(name) + '&house=' + encodeURIComponent(house));
            if (prog.ok) {
              const prev = maxDone;
              maxDone = (prog.data || []).reduce((m, p) => Math.max(m, p.StepOrder), 0);
              document.getElementById('progress').textContent = maxDone ? 'Destroyed: ' + maxDone + ' of ' + steps.length : '';
              if (maxDone !== prev) showClue();
            }
          }
        } catch (err) {}
        setTimeout(poll, 2000);
      }
      async function loadSteps() {
        const out = await getJSON('/api/horcrux/steps');
        if (out.ok) { steps = out.data || []; showClue(); }
      }
      document.getElementById('codeForm').addEventListener('submit', async (e) => {
        e.preventDefault();
        saveIdentity();
        if (!active) { document.getElementById('result').textContent = 'Game not started yet.'; return; }
        const out = await postJSON('/api/horcrux/submit', {
          display_name: document.getElementById('playerName').value,
          house: document.getElementById('playerHouse').value,
          code: document.getElementById('codeInput').value,
        });
        const result = document.getElementById('result');
        if (!out.ok) { result.textContent = out.error; return; }
        document.getElementById('codeInput').value = '';
        result.textContent = out.completed
          ? 'You destroyed the last horcrux!'
          : 'You found ' + (out.name || 'a horcrux') + '!';
        maxDone = out.step_order;
        showClue();
      });
      loadSteps();
      poll();
      </script>
`)
}
