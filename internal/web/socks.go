package web

import "github.com/a-h/templ"

func SocksView() templ.Component {
	return page("Sock Count", `
      <header class="hero">
        <span class="tag">Sock Count</span>
        <h1>How many socks did Dobby get?</h1>
        <p>Closest guess at the end of the night wins points for their house.</p>
      </header>
      <section class="panel">
        <form id="guessForm">
          <input id="playerName" placeholder="Your name" autocomplete="name" required/>
          <select id="playerHouse" required>`+houseOptions+`</select>
          <input id="guess" type="number" min="0" placeholder="Your guess" required/>
          <button type="submit" class="primary">Lock it in</button>
        </form>
        <div id="result" class="result"></div>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      document.getElementById('guessForm').addEventListener('submit', async (e) => {
        e.preventDefault();
        saveIdentity();
        const out = await postJSON('/api/games/socks/submit', {
          display_name: document.getElementById('playerName').value,
          house: document.getElementById('playerHouse').value,
          guess: Number(document.getElementById('guess').value),
        });
        document.getElementById('result').textContent =
          out.ok ? 'Guess saved. Submit again any time to change it.' : out.error;
      });
      </script>
`)
}
