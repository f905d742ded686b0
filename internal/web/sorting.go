package web

import "github.com/a-h/templ"

func SortingView() templ.Component {
	return page("Sorting Ceremony", `
      <header class="hero">
        <span class="tag">Sorting Ceremony</span>
        <h1>The hat knows.</h1>
      </header>
      <section class="panel">
        <form id="quiz"></form>
        <button id="submitQuiz" class="primary">Sort me</button>
        <div id="verdict" class="result"></div>
      </section>
      <script>`+identityScript+`
      let questions = [];
      async function loadQuiz() {
        const out = await getJSON('/api/sorting/questions');
        if (!out.ok) return;
        questions = out.data;
        const form = document.getElementById('quiz');
        form.innerHTML = questions.map(q =>
          '<fieldset><legend>' + q.prompt + '</legend>' +
          q.options.map(o =>
            '<label><input type="radio" name="' + q.id + '" value="' + o.id + '"/> ' + o.label + '</label>'
          ).join('') + '</fieldset>').join('');
      }
      document.getElementById('submitQuiz').addEventListener('click', async () => {
        const answers = {};
        for (const q of questions) {
          const chosen = document.querySelector('input[name="' + q.id + '"]:checked');
          if (chosen) answers[q.id] = chosen.value;
        }
        const out = await postJSON('/api/sorting/score', { answers });
        if (!out.ok) return;
        localStorage.setItem('hp_player_house', out.winner);
        const verdict = document.getElementById('verdict');
        verdict.className = 'result house ' + out.winner;
        verdict.innerHTML = '<h2>' + out.winner.toUpperCase() + '!</h2>' +
          Object.entries(out.tally).map(([h, p]) => '<div>' + h + ': ' + p + '</div>').join('');
      });
      loadQuiz();
      </script>
`)
}
