package main

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Card RPG Arena</title>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    body { font-family: system-ui, sans-serif; background: #0a0c10; color: #f3f4f6; margin: 0; padding: 20px; }
    .container { max-width: 900px; margin: 0 auto; }
    h1 { color: #c9a753; text-align: center; }
    button {
      cursor: pointer; padding: 10px 14px; border-radius: 10px;
      border: 1px solid rgba(201,167,83,.45);
      background: linear-gradient(180deg,#1a2330,#0e141e);
      color: #f3f4f6; font-weight: 700;
    }
    button:hover { filter: brightness(1.1); }
    button[disabled] { opacity: .5; cursor: not-allowed; }
    button.selected { border-color: #c9a753; background: #2a3344; }
    .panel { background: rgba(26,35,48,.6); border-radius: 12px; padding: 16px; border: 1px solid rgba(201,167,83,.2); margin: 12px 0; }
    .row { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; }
    .pick-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(140px, 1fr)); gap: 8px; }
    .bar { background: #22262e; border-radius: 6px; height: 12px; overflow: hidden; }
    .bar > div { height: 100%; background: #3fb950; transition: width .3s; }
    .bar > div.mid { background: #d29922; }
    .bar > div.low { background: #f85149; }
    .cards { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; }
    .cards button { padding: 16px; font-size: 15px; }
    .cards button.heal { border-color: rgba(63,185,80,.6); }
    #log { background: rgba(14,20,30,.8); border-radius: 8px; padding: 12px; max-height: 180px; overflow-y: auto; font-size: 14px; }
    #error { display: none; background: rgba(248,81,73,.15); border: 1px solid #f85149; border-radius: 8px; padding: 10px; margin: 10px 0; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    td, th { padding: 6px 8px; text-align: left; border-bottom: 1px solid #22262e; }
    tr.you { background: rgba(201,167,83,.12); }
    .muted { color: #8b949e; font-size: 12px; }
    .stats { display: flex; gap: 24px; align-items: center; justify-content: space-between; }
  </style>
</head>
<body>
  <div class="container">
    <h1>🃏 Card RPG Arena</h1>

    <div id="error"><span id="error-msg"></span> <button onclick="hideError()">Dismiss</button></div>

    <div class="panel stats">
      <div>
        <b>📊 Your Stats</b>
        <span id="my-score" class="muted">0W / 0L</span>
      </div>
      <button onclick="toggleBoard()">Leaderboard</button>
    </div>

    <div class="panel" id="board" style="display:none;">
      <h3>🏆 Leaderboard</h3>
      <table><thead><tr><th>#</th><th>Player</th><th>W</th><th>L</th><th>Win rate</th></tr></thead>
      <tbody id="board-body"></tbody></table>
    </div>

    <div class="panel" id="setup">
      <h2>⚔️ Prepare for Battle</h2>
      <h3>Enemy</h3><div class="pick-grid" id="pick-monster"></div>
      <div class="row">
        <div><h3>Weapon</h3><div class="pick-grid" id="pick-weapon"></div></div>
        <div><h3>Armor</h3><div class="pick-grid" id="pick-armor"></div></div>
      </div>
      <h3>Accessory</h3><div class="pick-grid" id="pick-accessory"></div>
      <p><button id="btn-start" onclick="startGame()">Start Battle</button></p>
    </div>

    <div class="panel" id="battle" style="display:none;">
      <div class="row">
        <div>
          <h3 id="player-name">Hero</h3>
          <div id="player-hp" class="muted"></div>
          <div class="bar"><div id="player-bar" style="width:100%"></div></div>
        </div>
        <div>
          <h3 id="enemy-name">Enemy</h3>
          <div id="enemy-hp" class="muted"></div>
          <div class="bar"><div id="enemy-bar" style="width:100%"></div></div>
        </div>
      </div>
      <h3>Your Cards</h3>
      <div class="cards" id="cards"></div>
      <h3>📜 Battle Log</h3>
      <div id="log"></div>
    </div>

    <div class="panel" id="gameover" style="display:none;">
      <h2 id="verdict"></h2>
      <button id="btn-restart" onclick="restart()">🔄 Play Again</button>
    </div>

    <div class="muted" id="identity"></div>
  </div>

  <script>
    let ws = null;
    let catalog = null;
    let myId = '';
    let myScore = { wins: 0, losses: 0 };
    let sel = { monster: 0, weapon: 0, armor: 0, accessory: 0 };
    let boardRows = [];

    async function boot() {
      const idRes = await fetch('/api/identity');
      myId = (await idRes.json()).id;
      document.getElementById('identity').textContent = 'Player: ' + shortId(myId);
      const catRes = await fetch('/api/catalog');
      catalog = await catRes.json();
      renderPickers();
      connect();
    }

    function shortId(id) {
      return id.length > 12 ? id.substring(0, 6) + '…' + id.substring(id.length - 6) : id;
    }

    function connect() {
      const protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
      ws = new WebSocket(protocol + '//' + location.host + '/ws');
      ws.onmessage = (event) => {
        const msg = JSON.parse(event.data);
        if (msg.type === 'state') handleState(msg.data);
        if (msg.type === 'score') handleScore(msg.data);
        if (msg.type === 'error') showError(msg.data.message);
      };
      ws.onclose = () => setTimeout(connect, 1000);
    }

    function picker(elID, items, key, label) {
      const el = document.getElementById(elID);
      el.innerHTML = '';
      items.forEach((item, i) => {
        const b = document.createElement('button');
        b.textContent = (item.tag || '') + ' ' + item.name + ' ' + label(item);
        b.className = sel[key] === i ? 'selected' : '';
        b.onclick = () => { sel[key] = i; renderPickers(); };
        el.appendChild(b);
      });
    }

    function renderPickers() {
      picker('pick-monster', catalog.monsters, 'monster', m => '(HP ' + m.hp + ', ' + m.min_damage + '-' + m.max_damage + ' dmg)');
      picker('pick-weapon', catalog.weapons, 'weapon', w => '+' + (w.damage_bonus || 0));
      picker('pick-armor', catalog.armor, 'armor', a => '+' + (a.hp_bonus || 0) + ' HP');
      picker('pick-accessory', catalog.accessories, 'accessory', a => '+' + (a.heal_bonus || 0) + ' heal');
    }

    function startGame() { ws.send(JSON.stringify({ type: 'start', data: sel })); }
    function playCard(i) { ws.send(JSON.stringify({ type: 'play', data: { card: i } })); }
    function restart() { ws.send(JSON.stringify({ type: 'restart' })); }

    function setBar(barID, hp, max) {
      const pct = max > 0 ? Math.max(0, hp / max * 100) : 0;
      const bar = document.getElementById(barID);
      bar.style.width = pct + '%';
      bar.className = pct > 60 ? '' : (pct > 30 ? 'mid' : 'low');
    }

    function handleState(s) {
      document.getElementById('setup').style.display = s.phase === 'setup' ? 'block' : 'none';
      document.getElementById('battle').style.display = s.phase === 'setup' ? 'none' : 'block';
      document.getElementById('gameover').style.display = s.phase === 'gameover' ? 'block' : 'none';
      if (s.phase === 'setup') return;

      document.getElementById('player-name').textContent = '🧝 ' + s.player.name;
      document.getElementById('player-hp').textContent = 'HP ' + s.player.hp + '/' + s.player.max_hp;
      setBar('player-bar', s.player.hp, s.player.max_hp);
      document.getElementById('enemy-name').textContent = s.enemy.name;
      document.getElementById('enemy-hp').textContent = 'HP ' + s.enemy.hp + '/' + s.enemy.max_hp;
      setBar('enemy-bar', s.enemy.hp, s.enemy.max_hp);

      const cards = document.getElementById('cards');
      cards.innerHTML = '';
      (s.player.hand || []).forEach((card, i) => {
        const b = document.createElement('button');
        b.className = card.effect === 'heal' ? 'heal' : '';
        b.textContent = card.name + ' — ' + (card.effect === 'heal' ? '💚 ' : '⚔️ ') + card.magnitude;
        b.disabled = s.phase !== 'playing' || s.submitting;
        b.onclick = () => playCard(i);
        cards.appendChild(b);
      });

      const log = document.getElementById('log');
      log.innerHTML = (s.log || []).map(l => '<div>▶ ' + l + '</div>').join('');
      log.scrollTop = log.scrollHeight;

      if (s.phase === 'gameover') {
        const won = s.outcome === 'enemy_defeated';
        document.getElementById('verdict').textContent = won
          ? '🎉 VICTORY! You defeated the ' + s.enemy.name + '!'
          : '💀 DEFEAT. You were defeated by the ' + s.enemy.name + '...';
        document.getElementById('btn-restart').disabled = s.submitting;
      }
    }

    function handleScore(data) {
      myScore = data.record;
      document.getElementById('my-score').textContent =
        myScore.wins + 'W / ' + myScore.losses + 'L (' + winRate(myScore) + '%)';
      boardRows = data.leaderboard || [];
      renderBoard();
    }

    function winRate(e) {
      const total = e.wins + e.losses;
      return total > 0 ? Math.round(e.wins / total * 100) : 0;
    }

    function renderBoard() {
      const body = document.getElementById('board-body');
      body.innerHTML = '';
      boardRows.forEach((e, i) => {
        const tr = document.createElement('tr');
        if (e.player === myId) tr.className = 'you';
        tr.innerHTML = '<td>' + (i + 1) + '</td><td>' + shortId(e.player) +
          (e.player === myId ? ' <b>YOU</b>' : '') + '</td><td>' + e.wins +
          '</td><td>' + e.losses + '</td><td>' + winRate(e) + '%</td>';
        body.appendChild(tr);
      });
    }

    function toggleBoard() {
      const el = document.getElementById('board');
      el.style.display = el.style.display === 'none' ? 'block' : 'none';
    }

    function showError(msg) {
      document.getElementById('error-msg').textContent = msg;
      document.getElementById('error').style.display = 'block';
    }
    function hideError() { document.getElementById('error').style.display = 'none'; }

    boot().catch(() => {
      showError('Failed to initialize. Reload to retry.');
    });
  </script>
</body>
</html>`
