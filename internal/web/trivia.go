package web

import "github.com/a-h/templ"

func TriviaView() templ.Component {
	return page("Trivia", `
      <header class="hero">
        <span class="tag">Trivia</span>
        <h1>Buzz fast.</h1>
      </header>
      <section class="panel">
        <input id="playerName" placeholder="Your name" autocomplete="name"/>
        <select id="playerHouse">`+houseOptions+`</select>
        <div id="status" class="status">Waiting for a question&hellip;</div>
        <button id="buzz" class="primary huge" disabled>BUZZ</button>
        <div id="result" class="result"></div>
      </section>
      <script>`+identityScript+`
      loadIdentity();
      let session = null;
      async function poll() {
        try {
          const out = await getJSON('/api/trivia/session');
          if (out.ok) {
            session = out.data;
            const live = session && session.Active;
            document.getElementById('buzz').disabled = !live;
            document.getElementById('status').textContent = live ? 'Question is live!' : 'Waiting for a question…';
          }
        } catch (err) {}
        setTimeout(poll, 600);
      }
      document.getElementById('buzz').addEventListener('click', async () => {
        saveIdentity();
        if (!session || !session.Active) return;
        const out = await postJSON('/api/trivia/buzz', {
          display_name: document.getElementById('playerName').value,
          house: document.getElementById('playerHouse').value,
          question_id: session.ActiveQuestionID,
        });
        document.getElementById('result').textContent = out.ok ? 'Buzzed in!' : out.error;
      });
      poll();
      </script>
`)
}

func TriviaDisplayView() templ.Component {
	return page("Trivia Display", `
      <header class="hero">
        <span class="tag">Trivia</span>
        <h1 id="question">Waiting&hellip;</h1>
      </header>
      <section class="panel">
        <h2>Buzz order</h2>
        <ol id="queue" class="queue"></ol>
      </section>
      <script>`+identityScript+`
      async function poll() {
        try {
          const session = await getJSON('/api/trivia/session');
          if (session.ok) {
            document.getElementById('question').textContent =
              session.data && session.data.Active ? 'Question #' + session.data.ActiveQuestionID : 'Waiting…';
          }
          const buzzes = await getJSON('/api/trivia/buzzes');
          if (buzzes.ok) {
            document.getElementById('queue').innerHTML = (buzzes.data || []).map(b =>
              '<li class="house ' + (b.House || '') + '">' + b.DisplayName + (b.House ? ' (' + b.House + ')' : '') + '</li>').join('');
          }
        } catch (err) {}
        setTimeout(poll, 600);
      }
      poll();
      </script>
`)
}
